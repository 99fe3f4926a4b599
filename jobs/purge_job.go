package jobs

import (
	"log"

	"github.com/patentehub/patente_hub/store"
)

// PurgeDeletedContent removes soft-deleted content past the 30-day
// retention window. The deleted listings also purge lazily, so this
// pass only matters for trash nobody has looked at in a while.
func PurgeDeletedContent(s *store.Store) {
	log.Println("Running job: PurgeDeletedContent...")

	purged, err := s.PurgeExpired()
	if err != nil {
		log.Printf("Error purging deleted content: %v", err)
		return
	}
	if purged == 0 {
		log.Println("No expired deleted content found.")
		return
	}
	log.Printf("Purged %d expired record(s) from trash.", purged)
}
