package module

import dom "muhurta/internal/services/snapshot/domain"

// Ports holds the ports exposed by the snapshot module
type Ports struct {
	Reader dom.ReaderPort
}
