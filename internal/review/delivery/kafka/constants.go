package kafka

// Default topic for review lifecycle events. Overridden by kafka.topic.
const TopicReviewEvents = "review.events"
