// pregen 在 TTS 服务上预先生成全部单词和字母的音频
package main

import (
	"context"
	"fmt"
	"io"
	"motorkeys_backend/internal/catalog"
	"motorkeys_backend/internal/config"
	"motorkeys_backend/internal/pregen"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type options struct {
	configDir string
	baseURL   string
	delay     time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "pregen",
		Short:         "预生成 TTS 音频缓存",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configDir, "config", "configs", "配置文件所在目录")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "TTS 服务地址 (默认读取 tts.base_url)")
	root.PersistentFlags().DurationVar(&opts.delay, "delay", 0, "请求间隔 (默认读取 tts.delay_ms)")

	root.AddCommand(&cobra.Command{
		Use:   "words",
		Short: "为词库中的所有单词生成音频",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := catalog.LoadSeed()
			if err != nil {
				return fmt.Errorf("加载词库失败: %w", err)
			}
			return runPregen(cmd, opts, "words", base.SpeakableTexts(), (*pregen.Client).Word)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "letters",
		Short: "为 a-z 生成字母音",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPregen(cmd, opts, "letters", pregen.Letters(), (*pregen.Client).Letter)
		},
	})
	return root
}

// resolve 命令行参数优先于配置文件
func (o *options) resolve(cmd *cobra.Command) (string, time.Duration, error) {
	baseURL, delay := o.baseURL, o.delay
	if !cmd.Flags().Changed("base-url") || !cmd.Flags().Changed("delay") {
		cfg, err := config.LoadConfig(o.configDir)
		if err != nil {
			return "", 0, fmt.Errorf("加载配置失败: %w", err)
		}
		if !cmd.Flags().Changed("base-url") {
			baseURL = cfg.TTS.BaseURL
		}
		if !cmd.Flags().Changed("delay") {
			delay = time.Duration(cfg.TTS.DelayMs) * time.Millisecond
		}
	}
	return baseURL, delay, nil
}

func runPregen(cmd *cobra.Command, opts *options, kind string, items []string, fetch func(*pregen.Client, context.Context, string) pregen.Result) error {
	baseURL, delay, err := opts.resolve(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	client := pregen.NewClient(baseURL, delay)
	fmt.Fprintf(out, "Checking TTS server at %s...\n", client.BaseURL)
	health, err := client.CheckHealth(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "TTS server: %s\n\n", health.Status)
	fmt.Fprintf(out, "Generating audio for %d %s...\n", len(items), kind)

	summary := pregen.Run(ctx, items, func(ctx context.Context, item string) pregen.Result {
		return fetch(client, ctx, item)
	}, func(i int, r pregen.Result) {
		printProgress(out, i, len(items), r)
	})
	printSummary(out, kind, summary)
	return nil
}

func printProgress(out io.Writer, i, total int, r pregen.Result) {
	status := "GENERATED"
	switch {
	case r.Err != nil:
		status = "FAILED: " + r.Err.Error()
	case r.Cached:
		status = "CACHED"
	}
	fmt.Fprintf(out, "[%5.1f%%] %q [%s]\n", float64(i+1)/float64(total)*100, r.Item, status)
}

func printSummary(out io.Writer, kind string, s pregen.Summary) {
	line := strings.Repeat("=", 60)
	fmt.Fprintf(out, "\n%s\nGeneration complete\n%s\n", line, line)
	fmt.Fprintf(out, "Total %s: %d\nNewly generated: %d\nAlready cached: %d\nFailed: %d\n", kind, s.Total, s.Generated, s.Cached, s.Failed)
	if len(s.FailedItems) > 0 {
		fmt.Fprintln(out, "\nFailed items:")
		for _, item := range s.FailedItems {
			fmt.Fprintf(out, "  - %s\n", item)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
