// Package docs bundles long-form documentation into the tm binary.
package docs

import "embed"

// Guide holds the bundled markdown topics under guide/.
//
//go:embed guide
var Guide embed.FS
