package module

import dom "muhurta/internal/services/rank/domain"

// Ports holds the ports exposed by the rank module
type Ports struct {
	Ranker dom.RankerPort
}
