package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/slack-go/slack"
)

// DeliverGuide uploads a generated guide page to the channel so the group
// gets the fresh file without anyone hosting it.
func DeliverGuide(api *slack.Client, channelID string, result GenerateResult, comment string) error {
	fi, err := os.Stat(result.OutputPath)
	if err != nil {
		return fmt.Errorf("stat guide file: %w", err)
	}
	if fi.Size() <= 0 {
		return fmt.Errorf("guide file is empty: %s", result.OutputPath)
	}

	_, err = api.UploadFileV2(slack.UploadFileV2Parameters{
		File:           result.OutputPath,
		FileSize:       int(fi.Size()),
		Filename:       filepath.Base(result.OutputPath),
		Channel:        channelID,
		Title:          fmt.Sprintf("Season Guide: %s", result.Build),
		InitialComment: comment,
	})
	if err != nil {
		return fmt.Errorf("upload guide: %w", err)
	}
	log.Printf("deliver-guide done file=%s size=%d channel=%s", result.OutputPath, fi.Size(), channelID)
	return nil
}

// PostCoachAdvice posts the coach's stat summary as a plain message.
func PostCoachAdvice(api *slack.Client, channelID, advice string) error {
	_, _, err := api.PostMessage(channelID, slack.MsgOptionText(advice, false))
	if err != nil {
		return fmt.Errorf("post coach advice: %w", err)
	}
	return nil
}
