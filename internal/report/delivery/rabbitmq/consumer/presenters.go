package consumer

import (
	"insight-srv/internal/report"
	rabbitDelivery "insight-srv/internal/report/delivery/rabbitmq"
)

func (c *consumer) toProcessInput(msg rabbitDelivery.ExportMessage) (report.ProcessInput, error) {
	input := report.ProcessInput{
		ReportID: msg.ReportID,
		Lang:     msg.Lang,
	}
	if msg.Token == "" {
		return input, nil
	}

	token, err := c.encrypter.Decrypt(msg.Token)
	if err != nil {
		return report.ProcessInput{}, err
	}
	input.Token = token
	return input, nil
}
