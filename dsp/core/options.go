package core

// DefaultSampleRate is the synthesis backend output rate in Hz.
const DefaultSampleRate = 24000

// ProcessorConfig defines common settings shared by segment processing.
// The sample rate is carried explicitly so duration and fade math never
// depends on hidden global state.
type ProcessorConfig struct {
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns defaults matching the synthesis backend.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
