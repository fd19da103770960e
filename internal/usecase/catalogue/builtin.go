package catalogue

import "github.com/marcos-nsantos/photostrip-backend/internal/domain/entity"

// Built-in tables served when the configuration store is unreachable or
// has not been seeded. The layout rows match the migration seed.
var (
	builtinLayouts = []entity.Layout{
		{
			ID: "strip-4", Type: entity.LayoutStrip4, Title: "The Signature",
			Description: "Classic vertical strip with 4 photos",
			PhotoCount:  4, AspectRatio: 1.0 / 3.0, PreviewImage: "/LayoutType/type 1.png",
		},
		{
			ID: "strip-2", Type: entity.LayoutStrip2, Title: "Portrait Mode",
			Description: "Two photos in a tall portrait strip",
			PhotoCount:  2, AspectRatio: 1.0 / 3.0, PreviewImage: "/LayoutType/type 2.png",
		},
		{
			ID: "grid-6", Type: entity.LayoutGrid6, Title: "Mix & Match",
			Description: "Six photos in a 2x3 grid",
			PhotoCount:  6, AspectRatio: 2.0 / 3.0, PreviewImage: "/LayoutType/type 3.png",
		},
		{
			ID: "grid-4", Type: entity.LayoutGrid4, Title: "Quad Grid",
			Description: "Four photos in a 2x2 grid",
			PhotoCount:  4, AspectRatio: 2.0 / 3.0, PreviewImage: "/LayoutType/type 4.png",
		},
	}

	builtinStickers = []entity.StickerAsset{
		{ID: "heart", Name: "Heart", Src: "/stickers/heart.png", Category: "love"},
		{ID: "star", Name: "Star", Src: "/stickers/star.png", Category: "sparkle"},
		{ID: "sparkles", Name: "Sparkles", Src: "/stickers/sparkles.png", Category: "sparkle"},
		{ID: "bow", Name: "Bow", Src: "/stickers/bow.png", Category: "cute"},
		{ID: "crown", Name: "Crown", Src: "/stickers/crown.png", Category: "cute"},
		{ID: "sunglasses", Name: "Sunglasses", Src: "/stickers/sunglasses.png", Category: "fun"},
		{ID: "speech-bubble", Name: "Speech Bubble", Src: "/stickers/speech-bubble.png", Category: "fun"},
		{ID: "flower", Name: "Flower", Src: "/stickers/flower.png", Category: "nature"},
	}

	builtinBackgrounds = []entity.BackgroundTexture{
		{ID: "paper", Name: "Paper", Src: "/backgrounds/paper.jpg"},
		{ID: "film-grain", Name: "Film Grain", Src: "/backgrounds/film-grain.jpg"},
		{ID: "confetti", Name: "Confetti", Src: "/backgrounds/confetti.png"},
		{ID: "gingham", Name: "Gingham", Src: "/backgrounds/gingham.png"},
	}
)
