package voice

// DefaultVoiceID is used when a request names no voice or an unknown one.
const DefaultVoiceID = "af_heart"

// DefaultCatalog returns the built-in voice presets of the fast synthesis
// tier. These voices are baked into the model and carry no reference
// sample files.
func DefaultCatalog() []Voice {
	return []Voice{
		{ID: "af_heart", Name: "Heart", Gender: "female", Accent: "American", Description: "Default voice"},
		{ID: "af_bella", Name: "Bella", Gender: "female", Accent: "American", Description: "Warm and friendly"},
		{ID: "af_nova", Name: "Nova", Gender: "female", Accent: "American", Description: "Modern and fresh"},
		{ID: "af_sarah", Name: "Sarah", Gender: "female", Accent: "American", Description: "Natural and warm"},
		{ID: "am_adam", Name: "Adam", Gender: "male", Accent: "American", Description: "Deep and authoritative"},
		{ID: "am_michael", Name: "Michael", Gender: "male", Accent: "American", Description: "Trustworthy"},
		{ID: "am_onyx", Name: "Onyx", Gender: "male", Accent: "American", Description: "Deep and smooth"},
		{ID: "bf_emma", Name: "Emma", Gender: "female", Accent: "British", Description: "Classic British"},
		{ID: "bf_lily", Name: "Lily", Gender: "female", Accent: "British", Description: "Soft and gentle"},
		{ID: "bm_daniel", Name: "Daniel", Gender: "male", Accent: "British", Description: "Distinguished"},
		{ID: "bm_george", Name: "George", Gender: "male", Accent: "British", Description: "Classic gentleman"},
		{ID: "jf_alpha", Name: "Alpha", Gender: "female", Accent: "Japanese", Description: "Clear Japanese"},
		{ID: "zf_xiaoxiao", Name: "Xiaoxiao", Gender: "female", Accent: "Chinese", Description: "Natural Mandarin"},
		{ID: "ff_siwis", Name: "Siwis", Gender: "female", Accent: "French", Description: "French female"},
		{ID: "ef_dora", Name: "Dora", Gender: "female", Accent: "Spanish", Description: "Spanish female"},
		{ID: "if_sara", Name: "Sara", Gender: "female", Accent: "Italian", Description: "Italian female"},
	}
}
