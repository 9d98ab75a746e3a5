package cmd

import (
	"log"

	"github.com/spigell/resume-sorter/internal/feedback"
	"github.com/spigell/resume-sorter/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record feedback about a prediction without the interactive form",
	Run: func(cmd *cobra.Command, _ []string) {
		recordFeedback(cmd)
	},
}

func init() {
	rootCmd.AddCommand(feedbackCmd)

	feedbackCmd.Flags().String("name", "", "your name")
	feedbackCmd.Flags().String("filename", "", "the analyzed resume file name")
	feedbackCmd.Flags().String("category", "", "the predicted category")
	feedbackCmd.Flags().String("correct", PromptYes, "whether the prediction was correct: Yes or No")
	feedbackCmd.Flags().String("comments", "", "free-form comments")

	feedbackCmd.MarkFlagRequired("filename")
	feedbackCmd.MarkFlagRequired("category")
}

func recordFeedback(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	rec := feedback.Record{}
	rec.Name, _ = cmd.Flags().GetString("name")
	rec.Filename, _ = cmd.Flags().GetString("filename")
	rec.PredictedCategory, _ = cmd.Flags().GetString("category")
	rec.Feedback, _ = cmd.Flags().GetString("correct")
	rec.Comments, _ = cmd.Flags().GetString("comments")

	if rec.Feedback != PromptYes && rec.Feedback != PromptNo {
		logger.Fatal("invalid feedback answer", zap.String("correct", rec.Feedback), zap.String("hint", "use Yes or No"))
	}

	sink := feedback.NewSink(config.FeedbackFile)
	if err := sink.Append(rec); err != nil {
		logger.Fatal("saving feedback", zap.Error(err))
	}

	logger.Info("feedback saved", zap.String("filename", sink.Path()))
}
