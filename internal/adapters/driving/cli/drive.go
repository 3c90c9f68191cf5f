package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gsuites/internal/connectors/google/drive"
	"github.com/custodia-labs/gsuites/internal/core/domain"
	"github.com/custodia-labs/gsuites/internal/core/services"
)

var (
	driveFields []string
	driveLimit  int
)

var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Work with Google Drive files and folders",
}

var driveLsCmd = &cobra.Command{
	Use:   "ls [QUERY]",
	Short: "List files matching a Drive query",
	Long: `List files matching a Drive query, following every result page.

Examples:
  gsuites drive ls "name contains 'report'"
  gsuites drive ls "'root' in parents and trashed = false" --fields id,name,mimeType`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDriveLs,
}

var driveFindFolderCmd = &cobra.Command{
	Use:   "find-folder NAME",
	Short: "Find folders by exact name",
	Args:  cobra.ExactArgs(1),
	RunE:  runDriveFindFolder,
}

var driveMkdirsCmd = &cobra.Command{
	Use:   "mkdirs PATH",
	Short: "Create every missing folder along a path",
	Long: `Resolve a slash-delimited folder path from the Drive root, creating only
the folders that do not exist yet. Running it twice creates nothing new.

Example:
  gsuites drive mkdirs /projects/2026/reports`,
	Args: cobra.ExactArgs(1),
	RunE: runDriveMkdirs,
}

var driveUploadCmd = &cobra.Command{
	Use:   "upload LOCAL REMOTE",
	Short: "Upload a file, replacing an existing one with the same name",
	Long: `Upload LOCAL to the remote path REMOTE. Missing folders are created.
A file with the same name and mime type in the target folder is updated
in place; otherwise a new file is created.

Example:
  gsuites drive upload ./report.pdf /projects/2026/report.pdf`,
	Args: cobra.ExactArgs(2),
	RunE: runDriveUpload,
}

var driveRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Permanently delete a file or folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runDriveRm,
}

func init() {
	driveLsCmd.Flags().StringSliceVar(&driveFields, "fields", nil, "file fields to request (default id,name)")
	driveLsCmd.Flags().IntVarP(&driveLimit, "limit", "n", 0, "maximum number of files (0 = all)")
	driveFindFolderCmd.Flags().IntVarP(&driveLimit, "limit", "n", 0, "maximum number of folders (0 = all)")

	driveCmd.AddCommand(driveLsCmd, driveFindFolderCmd, driveMkdirsCmd, driveUploadCmd, driveRmCmd)
	rootCmd.AddCommand(driveCmd)
}

func runDriveLs(cmd *cobra.Command, args []string) error {
	svc, err := requireDrive(cmd)
	if err != nil {
		return err
	}
	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	files, err := services.Collect(services.Take(svc.ListFiles(cmd.Context(), query, driveFields), driveLimit))
	if err != nil {
		return err
	}
	return renderResources(cmd, files)
}

func runDriveFindFolder(cmd *cobra.Command, args []string) error {
	svc, err := requireDrive(cmd)
	if err != nil {
		return err
	}
	folders, err := services.Collect(services.Take(svc.FindFolder(cmd.Context(), args[0]), driveLimit))
	if err != nil {
		return err
	}
	return renderResources(cmd, folders)
}

func runDriveMkdirs(cmd *cobra.Command, args []string) error {
	svc, err := requireDrive(cmd)
	if err != nil {
		return err
	}
	folder, err := svc.MakeDirs(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return renderResources(cmd, []domain.Resource{folder})
}

func runDriveUpload(cmd *cobra.Command, args []string) error {
	svc, err := requireDrive(cmd)
	if err != nil {
		return err
	}
	file, err := svc.UploadFile(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	return renderResources(cmd, []domain.Resource{file})
}

func runDriveRm(cmd *cobra.Command, args []string) error {
	svc, err := requireDrive(cmd)
	if err != nil {
		return err
	}
	if err := svc.Delete(cmd.Context(), args[0]); err != nil {
		return err
	}
	cmd.Println(success("Deleted " + args[0]))
	return nil
}

func renderResources(cmd *cobra.Command, files []domain.Resource) error {
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		size := ""
		if f.Size > 0 {
			size = strconv.FormatInt(f.Size, 10)
		}
		rows = append(rows, []string{
			f.ID, f.Name, f.MimeType, strings.Join(f.Parents, ","), size, drive.ResolveWebURL(f),
		})
	}
	if files == nil {
		files = []domain.Resource{}
	}
	return render(cmd, files, table{
		headers: []string{"ID", "Name", "Mime Type", "Parents", "Size", "Link"},
		rows:    rows,
	})
}
