package cli

// Flag names and descriptions
const (
	FlagConfig              = "config"
	FlagDir                 = "dir"
	FlagTemplate            = "template"
	FlagKeepTrailingNewline = "keep-trailing-newline"
	FlagAutoescape          = "autoescape"
	FlagSanitize            = "sanitize"
	FlagDebug               = "debug"

	DescConfig              = "Path to a YAML config file"
	DescDir                 = "Template directory"
	DescTemplate            = "Template file name inside the template directory"
	DescKeepTrailingNewline = "Keep the template's final newline"
	DescAutoescape          = "HTML-escape variable output"
	DescSanitize            = "Sanitize rendered HTML (none, ugc, strict)"
	DescDebug               = "Enable debug logging on stderr"
)
