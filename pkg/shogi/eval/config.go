package eval

// Config toggles which evaluators the Pipeline runs. All default to true;
// a caller assembling a cheap search-time evaluator can disable the more
// expensive detectors.
type Config struct {
	EnableMaterial   bool
	EnablePositional bool
	EnableTactical   bool
	EnableOpening    bool
	EnableEndgame    bool

	// Tactical detector toggles, mirroring §4.4.3's "independently enabled
	// via configuration" requirement. Tactical reads them from its own
	// Config; Pipeline.Evaluate reads only the five evaluator toggles above.
	EnableForks             bool
	EnablePins              bool
	EnableSkewers           bool
	EnableDiscoveredAttacks bool
	EnableBackRankThreats   bool
}

// DefaultConfig enables every evaluator and detector.
func DefaultConfig() Config {
	return Config{
		EnableMaterial:          true,
		EnablePositional:        true,
		EnableTactical:          true,
		EnableOpening:           true,
		EnableEndgame:           true,
		EnableForks:             true,
		EnablePins:              true,
		EnableSkewers:           true,
		EnableDiscoveredAttacks: true,
		EnableBackRankThreats:   true,
	}
}
