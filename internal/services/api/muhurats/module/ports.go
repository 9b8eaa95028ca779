package module

import dom "muhurta/internal/services/rank/domain"

// Ports holds the ports consumed by the muhurats module
type Ports struct {
	Ranker dom.RankerPort
}
