package scenario

// CannedVideo maps a scenario to a pre-generated clip, skipping the
// generation backends entirely for a known fixed set of scenarios.
type CannedVideo struct {
	ScenarioID string
	URL        string
}

var cannedVideos = []CannedVideo{
	{
		ScenarioID: "bap-meogeosseo",
		URL:        "https://nipa-s3-hack.s3.us-east-1.amazonaws.com/babmeugeu.mp4",
	},
	{
		ScenarioID: "daeume-boja",
		URL:        "https://nipa-s3-hack.s3.us-east-1.amazonaws.com/daeum.mp4",
	},
	{
		ScenarioID: "mani-deuseyo",
		URL:        "https://nipa-s3-hack.s3.us-east-1.amazonaws.com/manimugu.mp4",
	},
	{
		ScenarioID: "oneul-jom-bappeune",
		URL:        "https://nipa-s3-hack.s3.us-east-1.amazonaws.com/yageun.mp4",
	},
}

// CannedVideos returns the canned media table in fixed order.
func CannedVideos() []CannedVideo {
	return cannedVideos
}

// FindCannedVideo returns the pre-generated clip URL for a scenario, or ""
// when the scenario has no canned media.
func FindCannedVideo(scenarioID string) string {
	for _, item := range cannedVideos {
		if item.ScenarioID == scenarioID {
			return item.URL
		}
	}
	return ""
}
