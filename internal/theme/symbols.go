package theme

// Unicode symbols shared by the prompt and dashboard renderers.
const (
	SymbolOK       = "✓" // check passed
	SymbolWarning  = "⚠" // degraded but usable
	SymbolError    = "✗" // check failed
	SymbolInfo     = "ℹ" // informational
	SymbolDirty    = "✗" // uncommitted changes in the work tree
	SymbolUnpushed = "↑" // local commits absent from every remote
	SymbolPrompt   = "❯" // prompt terminator
)
