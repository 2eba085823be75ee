package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/modmenu/internal/core/domain"
)

var (
	showJSON   bool
	setAdd     bool
	setRemove  bool
	setForce   bool
	resetAll   bool
	resetForce bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all options",
	Long: `Show every option with its kind and current value.
Options that differ from their default are marked with *.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

var getCmd = &cobra.Command{
	Use:   "get <option>",
	Short: "Print one option value",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var setCmd = &cobra.Command{
	Use:   "set <option> [value...]",
	Short: "Change an option",
	Long: `Change an option and save the option file.

Booleans take true or false, enums take any casing of a constant, and
string sets take a comma-separated list. Use --add or --remove to edit a
string set in place. Without a value you are prompted for one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSet,
}

var resetCmd = &cobra.Command{
	Use:   "reset [option]",
	Short: "Restore defaults",
	Long:  `Restore one option, or every option with --all, to its default and save.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReset,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output options as JSON")
	setCmd.Flags().BoolVar(&setAdd, "add", false, "add values to a string set")
	setCmd.Flags().BoolVar(&setRemove, "remove", false, "remove values from a string set")
	setCmd.Flags().BoolVar(&setForce, "force", false, "save even if the option file could not be read")
	resetCmd.Flags().BoolVar(&resetAll, "all", false, "reset every option")
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "save even if the option file could not be read")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	s, err := initialize()
	if err != nil {
		return err
	}

	values := s.Options.Values()
	if showJSON {
		return outputShowJSON(cmd, values)
	}

	width := 0
	for _, v := range values {
		width = max(width, len(v.Descriptor.Name()))
	}

	cmd.Printf("Option file: %s\n\n", s.Persistence.Path())
	for _, v := range values {
		marker := " "
		if !v.IsDefault() {
			marker = "*"
		}
		cmd.Printf("%s %-*s  %-10s %s\n", marker, width, v.Descriptor.Name(), v.Descriptor.Kind(), displayValue(v))
	}
	return nil
}

func outputShowJSON(cmd *cobra.Command, values []domain.OptionValue) error {
	doc := make(map[string]any, len(values))
	for _, v := range values {
		switch v.Descriptor.Kind() {
		case domain.OptionKindBoolean:
			doc[v.Descriptor.Name()] = v.Bool
		case domain.OptionKindEnum:
			doc[v.Descriptor.Name()] = v.String()
		case domain.OptionKindStringSet:
			doc[v.Descriptor.Name()] = v.Set.Sorted()
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	s, err := initialize()
	if err != nil {
		return err
	}

	v, err := s.Options.Value(args[0])
	if err != nil {
		return err
	}
	cmd.Println(v.String())
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	if setAdd && setRemove {
		return errors.New("--add and --remove cannot be combined")
	}

	s, err := initialize()
	if err != nil {
		return err
	}
	if err := checkLoaded(s, setForce); err != nil {
		return err
	}

	name, values := args[0], args[1:]
	current, err := s.Options.Value(name)
	if err != nil {
		return err
	}

	switch {
	case setAdd:
		err = s.Options.AddToSet(name, values...)
	case setRemove:
		err = s.Options.RemoveFromSet(name, values...)
	case len(values) == 0:
		var raw string
		raw, err = promptValue(cmd, current)
		if err == nil {
			err = s.Options.Set(name, raw)
		}
	default:
		err = s.Options.Set(name, strings.Join(values, ","))
	}
	if err != nil {
		return err
	}

	return commit(cmd, s, name)
}

func runReset(cmd *cobra.Command, args []string) error {
	if resetAll == (len(args) == 1) {
		return errors.New("specify an option or --all")
	}

	s, err := initialize()
	if err != nil {
		return err
	}
	if err := checkLoaded(s, resetForce); err != nil {
		return err
	}

	if resetAll {
		s.Options.ResetAll()
		if err := s.Options.Commit(); err != nil {
			return fmt.Errorf("failed to save options: %w", err)
		}
		cmd.Println("All options reset to defaults.")
		return nil
	}

	if err := s.Options.Reset(args[0]); err != nil {
		return err
	}
	return commit(cmd, s, args[0])
}

// checkLoaded refuses to overwrite an option file that failed to load.
func checkLoaded(s *Services, force bool) error {
	err := s.Persistence.LastError()
	if err == nil || force || !errors.Is(err, domain.ErrParse) {
		return nil
	}
	return fmt.Errorf("%s could not be parsed, rerun with --force to overwrite it: %w",
		s.Persistence.Path(), err)
}

func commit(cmd *cobra.Command, s *Services, name string) error {
	if err := s.Options.Commit(); err != nil {
		return fmt.Errorf("failed to save options: %w", err)
	}
	v, err := s.Options.Value(name)
	if err != nil {
		return err
	}
	cmd.Printf("%s = %s\n", v.Descriptor.Name(), displayValue(v))
	return nil
}

func displayValue(v domain.OptionValue) string {
	if v.Descriptor.Kind() == domain.OptionKindStringSet && len(v.Set) == 0 {
		return "(none)"
	}
	return v.String()
}

// promptValue asks for a value on the command's input.
func promptValue(cmd *cobra.Command, current domain.OptionValue) (string, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	d := current.Descriptor

	switch d.Kind() {
	case domain.OptionKindBoolean:
		choices := []string{"true", "false"}
		def := 2
		if current.Bool {
			def = 1
		}
		return choose(cmd, reader, d.Name(), choices, def)

	case domain.OptionKindEnum:
		constants := d.EnumType().Constants()
		choices := make([]string, len(constants))
		def := 1
		for i, c := range constants {
			choices[i] = strings.ToLower(c)
			if c == current.Enum {
				def = i + 1
			}
		}
		return choose(cmd, reader, d.Name(), choices, def)

	default:
		cmd.Printf("%s (comma-separated) [%s]: ", d.Name(), current.String())
		line, err := readLine(reader)
		if err != nil {
			return "", err
		}
		if line == "" {
			return current.String(), nil
		}
		return line, nil
	}
}

func choose(cmd *cobra.Command, reader *bufio.Reader, name string, choices []string, def int) (string, error) {
	cmd.Printf("%s:\n", name)
	for i, c := range choices {
		cmd.Printf("  %d. %s\n", i+1, c)
	}
	cmd.Printf("Choice [%d]: ", def)

	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	return choices[parseChoice(line, len(choices), def)-1], nil
}

func readLine(reader *bufio.Reader) (string, error) {
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
