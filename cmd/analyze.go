package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spigell/resume-sorter/internal/extract"
	"github.com/spigell/resume-sorter/internal/feedback"
	"github.com/spigell/resume-sorter/internal/logger"
	"github.com/spigell/resume-sorter/internal/pipeline"
	"github.com/spigell/resume-sorter/internal/report"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"

	outputTable = "table"
	outputJSON  = "json"
)

var feedbackPrompt = promptui.Select{
	Label: "Was the predicted category correct?",
	Items: []string{PromptYes, PromptNo},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Predict the job category of a resume and score its sections",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addAnalyzeFlags(analyzeCmd)
}

func addAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("show-text", false, "print the extracted text")
	cmd.Flags().Bool("show-content", false, "print the full content of every section next to its summary")
	cmd.Flags().StringP("output", "o", outputTable, "output format: table or json")
	cmd.Flags().Bool("dump", false, "dump the analysis as JSON to a temporary file")
	cmd.Flags().Bool("skip-classify", false, "do not predict the job category")
	cmd.Flags().Bool("no-feedback", false, "do not ask for feedback on the prediction")
	cmd.Flags().StringSlice("headings", nil, "section headings to look for (overrides the config)")
}

func reportOptions(cmd *cobra.Command) report.Options {
	showText, _ := cmd.Flags().GetBool("show-text")
	showContent, _ := cmd.Flags().GetBool("show-content")
	return report.Options{ShowText: showText, ShowContent: showContent}
}

func analyze(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync() //nolint:errcheck

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-sorter", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	output, _ := cmd.Flags().GetString("output")
	if output != outputTable && output != outputJSON {
		logger.Fatal("invalid output format", zap.String("output", output))
	}

	headingFlag, _ := cmd.Flags().GetStringSlice("headings")
	headings, err := headingSet(config, headingFlag)
	if err != nil {
		logger.Fatal("building the heading set", zap.Error(err))
	}

	extractor := extract.New(logger)
	if config.Extract != nil && config.Extract.MaxFileSize > 0 {
		extractor.MaxFileSize = config.Extract.MaxFileSize
	}

	stages := pipeline.DefaultStages()
	deps := pipeline.Deps{
		Logger:    logger,
		Extractor: extractor,
		Headings:  headings,
	}

	if skip, _ := cmd.Flags().GetBool("skip-classify"); skip {
		pipeline.DisableByName(stages, pipeline.StageClassify, "--skip-classify flag is set")
	} else {
		adapter, err := loadAdapter(config)
		if err != nil {
			logger.Fatal("loading the model",
				zap.Error(err),
				zap.String("hint", "set model.vectorizer, model.classifier and model.encoder in the configuration file"),
			)
		}

		categorizer, err := newCategorizer(ctx, config, adapter, logger)
		if err != nil {
			logger.Fatal("creating a categorizer", zap.Error(err))
		}
		deps.Categorizer = categorizer
	}

	analysis := pipeline.NewAnalysis(path, filepath.Base(path))
	logger.Debug("prepared stages", zap.Any("stages", pipeline.Describe(stages)))

	if err := pipeline.Run(ctx, deps, stages, analysis); err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			logger.Fatal(extract.ErrUnsupportedFormat.Error(), zap.String("filename", analysis.Filename))
		}
		logger.Fatal("analysis failed", zap.Error(err))
	}

	switch output {
	case outputJSON:
		err = report.JSON(os.Stdout, analysis)
	default:
		err = report.Render(os.Stdout, analysis, reportOptions(cmd))
	}
	if err != nil {
		logger.Fatal("rendering the report", zap.Error(err))
	}

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		filename, err := report.DumpToTmpFile(analysis)
		if err != nil {
			logger.Fatal("dump results to file", zap.Error(err))
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
	}

	noFeedback, _ := cmd.Flags().GetBool("no-feedback")
	if noFeedback || analysis.Prediction == nil {
		return
	}

	rec, err := askFeedback(analysis)
	if err != nil {
		logger.Warn("skipping feedback", zap.Error(err))
		return
	}

	sink := feedback.NewSink(config.FeedbackFile)
	if err := sink.Append(rec); err != nil {
		logger.Fatal("saving feedback", zap.Error(err))
	}

	logger.Info("thank you for your feedback", zap.String("filename", sink.Path()))
}

// askFeedback walks the user through the feedback form.
func askFeedback(a *pipeline.Analysis) (feedback.Record, error) {
	_, answer, err := feedbackPrompt.Run()
	if err != nil {
		return feedback.Record{}, err
	}

	name, err := (&promptui.Prompt{Label: "Your name"}).Run()
	if err != nil {
		return feedback.Record{}, err
	}

	comments, err := (&promptui.Prompt{Label: "Comments"}).Run()
	if err != nil {
		return feedback.Record{}, err
	}

	return newRecord(a, answer, name, comments), nil
}

func newRecord(a *pipeline.Analysis, answer, name, comments string) feedback.Record {
	return feedback.Record{
		Name:              strings.TrimSpace(name),
		Filename:          a.Filename,
		PredictedCategory: a.Category(),
		Feedback:          answer,
		Comments:          strings.TrimSpace(comments),
	}
}
