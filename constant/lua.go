// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// GeneratePaletteFn is the required global function signature for Lua palette generator scripts.
const GeneratePaletteFn = "GeneratePalette"

// GeneratorTemplate is a Go text/template for scaffolding new Lua palette generator files.
const GeneratorTemplate = `-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT

-- GeneratePalette receives the base color as a lowercase "#rrggbb" hex string
-- and must return a table of hex strings, ordered from first to last swatch.
function GeneratePalette(base)
    return { base }
end
`
