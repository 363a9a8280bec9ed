package classify

import "github.com/arthur-debert/xf/pkg/styles"

// Names of the built-in groups.
const (
	GroupDir    = "DIR"
	GroupHidden = "HIDDEN"
	GroupImage  = "IMAGE"
	GroupConfig = "CONFIG"
	GroupExe    = "EXE"
)

// Defaults returns the built-in groups painted from reg. Hidden comes
// before Image, so ".logo.png" is painted as hidden.
func Defaults(reg *styles.Registry) *Classifier {
	return New().
		Group(GroupDir, reg.Get("Directory"), Directory()).
		Group(GroupHidden, reg.Get("Hidden"), Hidden(), StartsWith(".")).
		Group(GroupImage, reg.Get("Image"), Extensions("jpg", "png", "gif", "webp", "avif", "ico")).
		Group(GroupConfig, reg.Get("Config"), Filenames("Cargo.toml", "config.toml")).
		Group(GroupExe, reg.Get("Executable"), Executable(), Extensions("exe", "sh"))
}
