package locale

// Locale is the context key for the request language.
type Locale struct{}
