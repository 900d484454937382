/*
Package config provides the AnalysisConfig that is threaded, opaque and
uninterpreted, through every analysis constructor, plus the leveled
logger (LogGroup) the rest of this module uses to report solver progress and
findings.

Use [Load] to read a configuration from a YAML file, or [NewDefault] to get
one with sane defaults for programmatic use (e.g. in tests):

	cfg, err := config.Load("analysis.yaml")
	log := config.NewLogGroup(cfg)
	log.Infof("running constant propagation")

Loading the detailed semantics of a config file (schema validation, merging
multiple files, etc.) is out of scope for this module — Load only reads
and unmarshals YAML into [AnalysisConfig].
*/
package config
