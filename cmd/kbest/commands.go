package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lazykbest/kbest/config"
	"github.com/lazykbest/kbest/extractor"
	"github.com/lazykbest/kbest/sink"
)

var sentID int

func buildExtractor(cfg config.Config) *extractor.Extractor {
	opts := []extractor.Option{extractor.WithLogger(logger)}
	if cfg.UniqueNbest {
		opts = append(opts, extractor.WithUniqueNbest())
	}
	if cfg.Monolingual {
		opts = append(opts, extractor.WithMonolingual())
	}
	if cfg.Tree {
		opts = append(opts, extractor.WithTree())
	}
	if cfg.IncludeAlignment {
		opts = append(opts, extractor.WithAlignment())
	}
	if cfg.AddCombinedScore {
		opts = append(opts, extractor.WithCombinedScore())
	}
	if cfg.SanityCheck {
		opts = append(opts, extractor.WithSanityCheck())
	}

	return extractor.New(opts...)
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract up to N best derivations from the goal node",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		hg, tab, err := loadHypergraph(graphPath)
		if err != nil {
			return err
		}

		ext := buildExtractor(cfg)
		consumer := sink.NewLineSink(cmd.OutOrStdout(), logger)

		logger.Info("kbest: extracting", zap.Int("n", cfg.N), zap.Int("sentence_id", sentID))

		return ext.Extract(hg, tab, cfg.Functions(), cfg.N, sentID, consumer)
	},
}

var rank int

var kthCmd = &cobra.Command{
	Use:   "kth",
	Short: "Fetch a single k-th best hypothesis rooted at the goal node",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		hg, tab, err := loadHypergraph(graphPath)
		if err != nil {
			return err
		}

		goal, err := hg.Goal()
		if err != nil {
			return err
		}

		ext := buildExtractor(cfg)
		line, err := ext.KthHypothesis(goal, rank, tab, cfg.Functions(), sentID)
		if err != nil {
			return err
		}
		if line == nil {
			return fmt.Errorf("kbest: rank %d unreachable: fewer than %d distinct derivations", rank, rank)
		}

		fmt.Fprintln(cmd.OutOrStdout(), *line)

		return nil
	},
}

func init() {
	extractCmd.Flags().IntVar(&sentID, "sent-id", -1, "sentence id to prefix each line with (-1 omits it)")
	kthCmd.Flags().IntVar(&sentID, "sent-id", -1, "sentence id to prefix each line with (-1 omits it)")
	kthCmd.Flags().IntVar(&rank, "rank", 1, "1-based rank to fetch")
}
