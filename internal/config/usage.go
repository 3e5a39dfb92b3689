package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/agbru/vieta/internal/ui"
)

// setCustomUsage configures the flag set with a colored usage function.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		// Respect NO_COLOR even before the theme is initialized.
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}

		out := fs.Output()

		fmt.Fprintf(out, "\n%sVieta Constant Term%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Computes k·(-1)^n·Π roots from roots written in bases 2 to 36.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags] [input]\n\n%sFlags:%s\n", t.Warning, t.Reset, fs.Name(), t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			flagSig := fmt.Sprintf("-%s", f.Name)
			if len(name) > 0 {
				flagSig += " " + name
			}

			fmt.Fprintf(out, "  %s%-25s%s %s", t.Primary, flagSig, t.Reset, usage)

			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintf(out, "\n%sEnvironment:%s\n  Every flag can be set with %s<NAME>, e.g. %sENGINE=tree.\n\n", t.Warning, t.Reset, EnvPrefix, EnvPrefix)
	}
}
