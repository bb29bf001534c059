// linkrot finds broken links in websites, files, and local site
// copies. It resolves every link it extracts, including relative links
// confined to a local root directory, deduplicates them, and verifies
// each one over the filesystem or the network.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/linkrot/linkrot/cmd"
	"github.com/linkrot/linkrot/internal/pkg/runner"
)

func main() {
	if err := cmd.Run(); err != nil {
		if errors.Is(err, runner.ErrBrokenLinksFound) {
			os.Exit(2)
		}
		fmt.Println(err)
		os.Exit(1)
	}
}
