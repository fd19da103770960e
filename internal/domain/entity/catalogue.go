package entity

type StickerAsset struct {
	ID       string
	Name     string
	Src      string
	Category string
}

type BackgroundTexture struct {
	ID   string
	Name string
	Src  string
}
