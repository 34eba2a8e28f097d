// flags.go defines constants for CLI flag names shared by feature commands.

package feature

const (
	FlagFlat     = "flat"     // List routes as a flat table
	FlagLocal    = "local"    // Use local config scope
	FlagMarkdown = "markdown" // Render the table as markdown
	FlagRaw      = "raw"      // Disable terminal rendering
	FlagSnapshot = "snapshot" // Route snapshot file
	FlagUpdate   = "update"   // Rewrite the snapshot instead of comparing
)
