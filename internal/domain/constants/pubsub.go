package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Attribute keys attached to published comment events.
const (
	AttrCommentID = "comment_id"
	AttrArticleID = "article_id"
	AttrRequestID = "request_id"
)

// EnvLocal is the env.env value of a developer machine; push authentication is skipped there.
const EnvLocal = "local"
