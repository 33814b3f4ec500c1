// Package websocket - websocket/metrics.go
// file: websocket/metrics.go

package websocket

import (
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"go-skate-track/logger"
)

// Namespace for all SkateTrack metrics
var metricsNamespace = "SkateTrack"

// Reuse a single CloudWatch client for all metrics calls
var cwClient = cloudwatch.New(session.Must(session.NewSession()))

// metricsEnabled gates the publishers; local runs have no AWS credentials
// and should not spam error logs.
var metricsEnabled = os.Getenv("CLOUDWATCH_METRICS") == "enabled"

// PublishDisplayConnections pushes the current display client count.
func PublishDisplayConnections(count int) {
	putMetric("DisplayConnections", float64(count), "Count")
}

// PublishSweepTransitions pushes how many sessions a sweep just completed.
func PublishSweepTransitions(count int) {
	putMetric("SweepTransitions", float64(count), "Count")
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string) {
	if !metricsEnabled {
		return
	}

	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Timestamp:  aws.Time(time.Now()),
				Value:      aws.Float64(value),
				Unit:       aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
