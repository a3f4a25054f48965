// Package notify reports rotation outcomes.
//
// Reporter logs every outcome and, when a Publisher is configured, publishes
// it: failures always, successes only when PublishOnSuccess is set. A publish
// failure is logged and counted but never changes the outcome of the run it
// describes.
//
// SNSPublisher publishes to an Amazon SNS topic.
package notify
