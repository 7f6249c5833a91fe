package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwantia/pathkit"
)

func listOptions(cmd *cobra.Command) []pathkit.ListOption {
	var opts []pathkit.ListOption
	if recursive, _ := cmd.Flags().GetBool("recursive"); recursive {
		opts = append(opts, pathkit.WithRecursive())
	}
	if absolute, _ := cmd.Flags().GetBool("absolute"); absolute {
		opts = append(opts, pathkit.WithAbsolutePaths())
	}
	if ext, _ := cmd.Flags().GetString("ext"); ext != "" {
		opts = append(opts, pathkit.WithExtension(ext))
	}

	return opts
}

var lsCmd = &cobra.Command{
	Use:   "ls <dir>",
	Short: "List the children of a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := pathkit.Children
		if only, _ := cmd.Flags().GetString("only"); only == "dirs" {
			list = pathkit.Directories
		} else if only == "files" {
			list = pathkit.Files
		}

		entries, err := list(args[0], listOptions(cmd)...)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			fmt.Println(entry)
		}

		return nil
	},
}

var mkdirsCmd = &cobra.Command{
	Use:   "mkdirs <dir>",
	Short: "Create a directory chain if absent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := pathkit.Create(args[0])
		if err != nil {
			return err
		}
		if created == "" {
			logger.Warn("not created, path exists as a file: %s", args[0])
			return nil
		}

		fmt.Println(created)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear <dir>",
	Short: "Remove a directory's contents, keeping the directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recursive, _ := cmd.Flags().GetBool("recursive")
		logger.Debug("clearing %s (recursive=%v)", args[0], recursive)

		return pathkit.Clear(args[0], recursive)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Delete a file, symlink or directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recursive, _ := cmd.Flags().GetBool("recursive")
		logger.Debug("deleting %s (recursive=%v)", args[0], recursive)

		return pathkit.Delete(args[0], recursive)
	},
}

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print a file's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, ok, err := pathkit.Read(args[0])
		if err != nil {
			return err
		}
		if !ok {
			logger.Warn("no such file: %s", args[0])
			return nil
		}

		fmt.Print(text)
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <path> <text>",
	Short: "Write text to a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		return pathkit.Write(args[0], args[1], overwrite)
	},
}

var touchCmd = &cobra.Command{
	Use:   "touch <path>",
	Short: "Create an empty file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		return pathkit.Touch(args[0], overwrite)
	},
}

var cpCmd = &cobra.Command{
	Use:   "cp <donor> <recipient>",
	Short: "Copy a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		return pathkit.Copy(args[0], args[1], overwrite)
	},
}

var countCmd = &cobra.Command{
	Use:   "count {chars|lines|words} <path>",
	Short: "Count characters, lines or words in a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			count int
			ok    bool
			err   error
		)

		switch args[0] {
		case "chars":
			count, ok, err = pathkit.Characters(args[1])
		case "lines":
			count, ok, err = pathkit.LineCount(args[1])
		case "words":
			count, ok, err = pathkit.WordCount(args[1])
		default:
			return fmt.Errorf("unknown metric %q", args[0])
		}

		if err != nil {
			return err
		}
		if !ok {
			logger.Warn("no such file: %s", args[1])
			return nil
		}

		fmt.Println(count)
		return nil
	},
}

var findCmd = &cobra.Command{
	Use:   "find <path> <word>",
	Short: "Find the first line containing a whole word",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, ok, err := pathkit.LineNumber(args[0], args[1])
		if err != nil {
			return err
		}
		if !ok {
			logger.Warn("no such file: %s", args[0])
			return nil
		}

		fmt.Println(number)
		return nil
	},
}

var stampCmd = &cobra.Command{
	Use:   "stamp <path>",
	Short: "Derive a timestamp-suffixed sibling filename",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if unique, _ := cmd.Flags().GetBool("unique"); unique {
			fmt.Println(pathkit.Unique(args[0]))
			return nil
		}

		fmt.Println(pathkit.Stamp(args[0]))
		return nil
	},
}

func init() {
	lsCmd.Flags().BoolP("recursive", "r", false, "Descend into subdirectories")
	lsCmd.Flags().BoolP("absolute", "a", false, "Return joined paths instead of names")
	lsCmd.Flags().StringP("ext", "e", "", "Only list files with this extension")
	lsCmd.Flags().String("only", "", "Restrict to 'dirs' or 'files'")

	clearCmd.Flags().BoolP("recursive", "r", false, "Remove subdirectories as well")
	rmCmd.Flags().BoolP("recursive", "r", false, "Remove directory contents as well")

	writeCmd.Flags().Bool("overwrite", false, "Allow replacing an existing file")
	touchCmd.Flags().Bool("overwrite", false, "Allow replacing an existing file")
	cpCmd.Flags().Bool("overwrite", false, "Allow replacing an existing recipient")

	stampCmd.Flags().Bool("unique", false, "Use a UUIDv7 instead of a timestamp")

	rootCmd.AddCommand(lsCmd, mkdirsCmd, clearCmd, rmCmd, catCmd,
		writeCmd, touchCmd, cpCmd, countCmd, findCmd, stampCmd)
}
