// Package main provides the CLI entry point for vegsum.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shuxinlan/vegsum/pkg/vegsum"
	"github.com/shuxinlan/vegsum/pkg/vegsum/output"
)

var (
	dirFlag    string
	outputFlag string
	configFlag string
	verbose    bool
	noPause    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vegsum",
		Short: "Aggregate per-unit shipment workbooks into one summary table",
		Long: `vegsum reads the shipment workbooks in the Vegetable folder next to the
executable, extracts (serial, product name, ship quantity) lines per
worksheet, and writes a serial × unit summary workbook with summed
quantities.`,
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&dirFlag, "dir", "", "Input folder (default: Vegetable next to the executable)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Summary workbook path (default: 蔬心兰.xlsx next to the executable)")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "Path to a YAML config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&noPause, "no-pause", false, "Do not wait for Enter when the input folder is missing")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)

	opts := vegsum.DefaultOptions()
	if configFlag != "" {
		var err error
		if opts, err = vegsum.LoadOptions(configFlag); err != nil {
			return err
		}
	}

	base, err := executableDir()
	if err != nil {
		return fmt.Errorf("resolve base directory: %w", err)
	}

	vegDir := dirFlag
	if vegDir == "" {
		vegDir = filepath.Join(base, opts.InputDirName)
	}
	fmt.Printf("路径：%s\n", vegDir)

	if info, err := os.Stat(vegDir); err != nil || !info.IsDir() {
		fmt.Printf("错误: 找不到 %s 文件夹\n", opts.InputDirName)
		fmt.Println("请在程序所在目录创建该文件夹")
		fmt.Println("并将 Excel 文件放入其中")
		waitForEnter()
		return nil
	}

	collector := vegsum.NewCollector(logger, opts)

	files, err := collector.Discover(vegDir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", vegDir, err)
	}
	if len(files) == 0 {
		fmt.Printf("在 %s 下未找到 Excel 文件。\n", vegDir)
		return nil
	}

	fmt.Printf("共找到 %d 个 Excel 文件\n\n", len(files))
	fmt.Println(strings.Repeat("=", 60))

	results := collector.Collect(vegDir, files)
	for _, res := range results {
		fmt.Printf("\n文件: %s\n", res.Name)
		if res.Err != nil {
			fmt.Printf("  无法打开: %v\n", res.Err)
		}
		for _, sheet := range res.Sheets {
			fmt.Printf("  单位: %s\n", sheet.Unit)
			if len(sheet.Items) == 0 {
				fmt.Println("    （无商品数据）")
				continue
			}
			for _, item := range sheet.Items {
				fmt.Printf("    - %s  应发数量: %s\n", item.Name, formatQuantity(item.Quantity))
			}
		}
		fmt.Println(strings.Repeat("-", 60))
	}

	sheets := vegsum.Flatten(results)
	if len(sheets) == 0 {
		fmt.Printf("\n无数据，未生成%s\n", opts.OutputFileName)
		return nil
	}

	pivot := vegsum.BuildPivot(sheets)

	outPath := outputFlag
	if outPath == "" {
		outPath = filepath.Join(base, opts.OutputFileName)
	}

	writer := output.NewWriter(opts.SheetTitle, opts.SerialLabel, opts.NameLabel)
	if err := writer.Write(pivot, outPath); err != nil {
		fmt.Fprintf(os.Stderr, "错误: 无法生成%s: %v\n", opts.OutputFileName, err)
		fmt.Fprintln(os.Stderr, "请确认输出文件未被其他程序打开后重试")
		return err
	}

	fmt.Printf("\n已生成汇总表: %s\n", outPath)
	fmt.Printf("  行（按商品序号合并）: %d，列（单位）: %d\n", len(pivot.Serials), len(pivot.Units))
	return nil
}

// executableDir resolves the directory the binary lives in, so the tool
// works from a double-click next to its data folder.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

func waitForEnter() {
	if noPause {
		return
	}
	fmt.Print("按回车键退出...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// formatQuantity prints integral quantities without a decimal point.
func formatQuantity(qty float64) string {
	if qty == float64(int64(qty)) {
		return fmt.Sprintf("%d", int64(qty))
	}
	return fmt.Sprintf("%g", qty)
}
