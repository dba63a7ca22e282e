// Command promptdemo exercises each preset from the command line, one
// subcommand per widget — replaces the teacher's cmd/example1..12
// single-purpose demos with a single cobra-driven binary.
//
// Grounded on _examples/AhnafCodes-basementui/go/main.go for the "parse
// argv, run one demo, print the result" shape, and on cobra usage in
// _examples/vito-dang and _examples/majorcontext-moat's cmd trees for
// the subcommand wiring itself (the teacher had no CLI framework).
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"duskline/internal/logging"
	"duskline/preset"
	"duskline/widget/tree"
)

var logger *slog.Logger

func main() {
	logger = logging.New(os.Stderr, logging.Options{Level: slog.LevelWarn})

	root := &cobra.Command{
		Use:   "promptdemo",
		Short: "Exercise duskline's interactive prompts from a terminal",
	}

	root.AddCommand(
		readlineCmd(),
		confirmCmd(),
		passwordCmd(),
		listboxCmd(),
		checkboxCmd(),
		treeCmd(),
		jsonCmd(),
		jsonStreamCmd(),
		querySelectorCmd(),
		formCmd(),
	)

	if err := root.Execute(); err != nil {
		logger.Error("promptdemo failed", "error", err)
		os.Exit(1)
	}
}

func readlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readline",
		Short: "Free-text prompt with history recall",
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := preset.NewReadline("> ").Run()
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		},
	}
}

func confirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm",
		Short: "Yes/no prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := preset.NewConfirm("Continue? (y/n) ").Run()
			if err != nil {
				return err
			}
			fmt.Println(ok)
			return nil
		},
	}
}

func passwordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password",
		Short: "Masked-input prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := preset.NewPassword("password: ").Run()
			if err != nil {
				return err
			}
			fmt.Println(len(secret), "characters entered")
			return nil
		},
	}
}

func listboxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listbox",
		Short: "Single-selection list prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := preset.NewListbox([]string{"red", "green", "blue"}, true).Run()
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		},
	}
}

func checkboxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkbox",
		Short: "Multi-selection list prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := preset.NewCheckbox([]string{"vim", "emacs", "nano"}, false).Run()
			if err != nil {
				return err
			}
			fmt.Println(answers)
			return nil
		},
	}
}

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Collapsible tree prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			root := tree.NewNode("project",
				tree.NewNode("cmd", tree.NewNode("promptdemo")),
				tree.NewNode("widget", tree.NewNode("tree"), tree.NewNode("jsonstream")),
			)
			answer, err := preset.NewTree(root).Run()
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		},
	}
}

func jsonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Collapsible JSON viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			sample := `{"name":"duskline","tags":["tui","prompt"],"meta":{"version":1}}`
			j, err := preset.NewJSON([]byte(sample))
			if err != nil {
				return err
			}
			return j.Run()
		},
	}
}

// slowReader dribbles out p in small chunks with a delay between each,
// standing in for a slow network source so jsonStreamCmd's spinner has
// something to animate against.
type slowReader struct {
	data  []byte
	pos   int
	chunk int
	delay time.Duration
}

func (s *slowReader) Read(p []byte) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	time.Sleep(s.delay)
	n := min(s.chunk, len(s.data)-s.pos, len(p))
	copy(p, s.data[s.pos:s.pos+n])
	s.pos += n
	return n, nil
}

func jsonStreamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json-stream",
		Short: "Collapsible JSON viewer fed by a slow background read, with a loading spinner",
		RunE: func(cmd *cobra.Command, args []string) error {
			sample := `{"name":"duskline","tags":["tui","prompt"],"meta":{"version":1}}`
			src := &slowReader{data: []byte(sample), chunk: 8, delay: 120 * time.Millisecond}
			j, err := preset.RunJSONStreamFromReader(src)
			if err != nil {
				return err
			}
			return j.Run()
		},
	}
}

func querySelectorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query-selector",
		Short: "Live-filtered selection prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := preset.NewQuerySelector([]string{"apple", "banana", "cherry", "date"}).Run()
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		},
	}
}

func formCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Multi-field form prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := preset.NewForm([]preset.FormField{
				{Label: "name: ", Validate: requireNonEmpty},
				{Label: "email: ", Validate: requireNonEmpty},
			}).Run()
			if err != nil {
				return err
			}
			fmt.Println(answers)
			return nil
		},
	}
}

func requireNonEmpty(s string) string {
	if s == "" {
		return "required"
	}
	return ""
}
