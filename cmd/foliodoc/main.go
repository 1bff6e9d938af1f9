// foliodoc validates the embedded deck content and prints an outline:
// spec files, section structure, and the boot timeline. Run it after editing
// anything under prefabs/.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Abhishek10745/folio/ecs/system"
	"github.com/Abhishek10745/folio/prefabs"
)

func main() {
	quiet := flag.Bool("q", false, "only report errors")
	flag.Parse()

	failed := false

	names, err := prefabs.Names()
	if err != nil {
		log.Fatalf("list specs: %v", err)
	}
	if !*quiet {
		fmt.Printf("specs: %v\n", names)
	}

	field, err := prefabs.LoadFieldSpec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "field.yaml: %v\n", err)
		failed = true
	} else if !*quiet {
		fmt.Printf("field %q: desktop=%d mobile=%d link=%.0f\n",
			field.Name, field.DesktopCount, field.MobileCount, field.LinkDistance)
	}

	sections, err := prefabs.LoadSectionsSpec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sections.yaml: %v\n", err)
		failed = true
	} else if !*quiet {
		for _, sec := range sections.Sections {
			fmt.Printf("section %-10s %q (%d body, %d projects, %d skills)\n",
				sec.ID, sec.Title, len(sec.Body), len(sec.Projects), len(sec.Skills))
		}
	}

	steps, err := system.LoadBootTimeline("boot.tengo")
	if err != nil {
		fmt.Fprintf(os.Stderr, "boot.tengo: %v\n", err)
		failed = true
	} else if !*quiet {
		total := 0
		for _, s := range steps {
			total += s.Delay
		}
		fmt.Printf("boot timeline: %d steps, ~%.1fs\n", len(steps), float64(total)/60)
	}

	if failed {
		os.Exit(1)
	}
}
