package session

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/photostrip-backend/internal/domain"
)

func objectPrefix(sessionID uuid.UUID) string {
	return fmt.Sprintf("sessions/%s/", sessionID)
}

// checkRef admits the image references a session may have the server
// draw: inline images, bundled assets, objects stored for this session and
// anything the catalogue lists. Remote URLs and other sessions' objects
// are refused unless catalogued.
func (s *Service) checkRef(ctx context.Context, sessionID uuid.UUID, ref string) error {
	switch {
	case strings.HasPrefix(ref, "data:image"):
		return nil
	case strings.HasPrefix(ref, "/"):
		if fs.ValidPath(strings.TrimPrefix(ref, "/")) {
			return nil
		}
	default:
		key, ok := strings.CutPrefix(ref, objectScheme)
		if ok && strings.HasPrefix(key, objectPrefix(sessionID)) && fs.ValidPath(key) {
			return nil
		}
		if s.catalogue.HasAsset(ctx, ref) {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", domain.ErrAssetNotAllowed, ref)
}
