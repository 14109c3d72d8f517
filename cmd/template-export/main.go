package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"makershop.backend/internal/usecases"
)

// template-export dumps the built-in template presets as JSON so the
// frontend can bundle them for its template picker.

func exportTemplates(id string) ([]byte, error) {
	if id != "" {
		tpl, ok := usecases.GetTemplate(id)
		if !ok {
			return nil, fmt.Errorf("unknown template: %s", id)
		}
		return json.MarshalIndent(tpl, "", "  ")
	}
	return json.MarshalIndent(usecases.ListTemplates(), "", "  ")
}

func main() {
	id := flag.String("id", "", "export a single template by ID")
	flag.Parse()

	out, err := exportTemplates(*id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
