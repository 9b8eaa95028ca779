package module

import dom "muhurta/internal/services/snapshot/domain"

// Ports holds the ports consumed by the panchanga module
type Ports struct {
	Reader dom.ReaderPort
}
