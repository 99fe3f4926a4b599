package jobs

import (
	"log"

	"github.com/patentehub/patente_hub/store"
)

// CleanExpiredTokens drops auth sessions past their expiry.
func CleanExpiredTokens(s *store.Store) {
	log.Println("Running job: CleanExpiredTokens...")

	removed, err := s.CleanExpiredAuthTokens()
	if err != nil {
		log.Printf("Error cleaning expired tokens: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Removed %d expired auth token(s).", removed)
	}
}
