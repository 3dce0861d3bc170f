package twitter

// usersResponse represents the /2/users/by response structure.
type usersResponse struct {
	Data []apiUser `json:"data"`
}

type apiUser struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url"`
}

// timelineResponse represents the /2/users/:id/tweets response structure.
type timelineResponse struct {
	Data []apiTweet   `json:"data"`
	Meta timelineMeta `json:"meta"`
}

type apiTweet struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type timelineMeta struct {
	ResultCount int    `json:"result_count"`
	NewestID    string `json:"newest_id"`
	OldestID    string `json:"oldest_id"`
}
