package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write gsuites configuration",
	Long: `Read and write keys of ~/.gsuites/config.toml.

Known keys:
  credentials.path          credential JSON file
  drive.root_id             folder paths start here (default "root")
  drive.spaces              Drive spaces to list (default "drive")
  drive.page_size           files per list page (default 100)
  drive.strict              fail when a folder name is ambiguous
  gmail.user_id             mailbox to use (default "me")
  gmail.page_size           messages per list page
  gmail.include_spam_trash  include SPAM and TRASH in searches
  calendar.page_size        events per list page
  calendar.assign_event_ids generate event IDs on the client`,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Integers and booleans are stored typed,
everything else as a string.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}
	cmd.Println(val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	if err := configStore.Set(args[0], parseValue(args[1])); err != nil {
		return err
	}
	cmd.Println(success(fmt.Sprintf("%s = %s", args[0], args[1])))
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	values := make(map[string]any)
	rows := make([][]string, 0)
	for _, key := range configStore.Keys() {
		val, _ := configStore.Get(key)
		values[key] = val
		rows = append(rows, []string{key, fmt.Sprint(val)})
	}
	return render(cmd, values, table{headers: []string{"Key", "Value"}, rows: rows})
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	cmd.Println(configStore.Path())
	return nil
}

// parseValue keeps integers and booleans typed in the TOML file.
func parseValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
