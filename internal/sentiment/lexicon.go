package sentiment

// lexicon holds the prior polarity of English sentiment words in [-1, 1].
var lexicon = map[string]float64{
	// positive
	"good": 0.7, "great": 0.8, "best": 1.0, "better": 0.5, "excellent": 1.0,
	"amazing": 0.6, "awesome": 1.0, "wonderful": 1.0, "fantastic": 0.4,
	"brilliant": 0.9, "superb": 1.0, "perfect": 1.0, "beautiful": 0.85,
	"lovely": 0.5, "nice": 0.6, "fine": 0.4, "happy": 0.8, "happiness": 0.8,
	"glad": 0.5, "joy": 0.8, "joyful": 0.8, "cheerful": 0.8, "delighted": 0.7,
	"delightful": 0.9, "pleased": 0.5, "excited": 0.4, "exciting": 0.3,
	"fun": 0.3, "funny": 0.25, "hilarious": 0.5, "love": 0.5, "loving": 0.6,
	"loved": 0.7, "lover": 0.5, "friendly": 0.4, "kind": 0.6, "gentle": 0.4,
	"warm": 0.6, "sweet": 0.35, "charming": 0.5, "brave": 0.8, "heroic": 0.6,
	"hero": 0.4, "honest": 0.6, "loyal": 0.33, "hope": 0.4, "hopeful": 0.5,
	"inspiring": 0.5, "inspired": 0.4, "triumph": 0.6, "triumphant": 0.7,
	"success": 0.5, "successful": 0.75, "win": 0.6, "wins": 0.6, "winning": 0.5,
	"victory": 0.6, "free": 0.4, "freedom": 0.4, "peace": 0.5, "peaceful": 0.5,
	"calm": 0.3, "safe": 0.5, "rich": 0.375, "famous": 0.5, "legendary": 0.6,
	"magical": 0.5, "magic": 0.4, "remarkable": 0.75, "extraordinary": 0.4,
	"incredible": 0.9, "unforgettable": 0.6, "classic": 0.17, "epic": 0.2,
	"young": 0.1, "new": 0.14, "true": 0.35, "real": 0.2, "smart": 0.2,
	"clever": 0.5, "talented": 0.7, "gifted": 0.5, "powerful": 0.3,
	"strong": 0.43, "bright": 0.7, "positive": 0.23, "grateful": 0.6,
	"fortunate": 0.4, "lucky": 0.33, "romantic": 0.4, "tender": 0.3,
	"uplifting": 0.7, "heartwarming": 0.7, "enjoy": 0.4, "enjoyable": 0.5,
	"pleasant": 0.7, "ok": 0.5, "okay": 0.5, "cool": 0.35, "relaxed": 0.3,
	"content": 0.2, "thrilled": 0.6, "ecstatic": 0.8, "optimistic": 0.5,
	"fabulous": 0.4, "terrific": 0.5, "marvelous": 0.8, "glorious": 0.7,
	"redemption": 0.3, "friendship": 0.4, "together": 0.1,

	// negative
	"bad": -0.7, "worse": -0.4, "worst": -1.0, "terrible": -1.0,
	"horrible": -1.0, "awful": -1.0, "dreadful": -0.8, "poor": -0.4,
	"sad": -0.5, "sadness": -0.5, "unhappy": -0.6, "miserable": -1.0,
	"depressed": -0.5, "depressing": -0.6, "gloomy": -0.6, "lonely": -0.3,
	"alone": -0.1, "angry": -0.5, "anger": -0.5, "furious": -0.6, "mad": -0.6,
	"upset": -0.3, "annoyed": -0.4, "tired": -0.4, "bored": -0.5,
	"boring": -1.0, "dull": -0.3, "scared": -0.5, "afraid": -0.6,
	"fear": -0.4, "frightening": -0.6, "terrifying": -0.8, "horror": -0.5,
	"anxious": -0.25, "worried": -0.4, "stressed": -0.3, "hopeless": -0.7,
	"desperate": -0.6, "broken": -0.4, "hurt": -0.4, "pain": -0.5,
	"painful": -0.7, "cruel": -1.0, "brutal": -0.875, "violent": -0.8,
	"violence": -0.6, "evil": -1.0, "wicked": -0.5, "sinister": -0.5,
	"dark": -0.15, "dangerous": -0.6, "deadly": -0.2, "dead": -0.2,
	"death": -0.4, "die": -0.4, "dies": -0.4, "dying": -0.5, "kill": -0.5,
	"kills": -0.5, "killed": -0.5, "killer": -0.5, "killing": -0.5,
	"murder": -0.6, "murdered": -0.6, "murderer": -0.6, "war": -0.3,
	"crime": -0.3, "criminal": -0.4, "corrupt": -0.5, "guilty": -0.5,
	"tragic": -0.75, "tragedy": -0.6, "disaster": -0.6, "grim": -0.5,
	"bleak": -0.5, "lost": -0.3, "lose": -0.3, "loss": -0.4, "failure": -0.4,
	"failed": -0.5, "fail": -0.5, "abandoned": -0.3, "betrayed": -0.5,
	"betrayal": -0.5, "revenge": -0.4, "vengeful": -0.5, "hate": -0.8,
	"hateful": -0.8, "hated": -0.8, "disgusting": -1.0, "nasty": -1.0,
	"ugly": -0.7, "stupid": -0.8, "wrong": -0.5, "sick": -0.7, "ill": -0.5,
	"weak": -0.375, "insane": -0.5, "crazy": -0.6, "strange": -0.05,
	"troubled": -0.4, "trouble": -0.3, "haunted": -0.3, "haunting": -0.2,
	"mysterious": -0.1, "ruthless": -0.6, "savage": -0.6, "vicious": -0.7,
	"hostile": -0.5, "toxic": -0.5, "paranoid": -0.5, "doomed": -0.6,
	"negative": -0.3, "cry": -0.3, "crying": -0.3, "tears": -0.2,
	"grief": -0.6, "mourning": -0.4, "heartbroken": -0.7, "lousy": -0.5,
	"meh": -0.2, "exhausted": -0.4, "frustrated": -0.5, "disappointed": -0.75,
	"disappointing": -0.6, "pathetic": -1.0, "tense": -0.3, "desolate": -0.5,
}

// intensifiers scale the polarity of the next sentiment word.
var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "incredibly": 1.5,
	"so": 1.2, "too": 1.2, "super": 1.4, "totally": 1.3, "absolutely": 1.5,
	"completely": 1.3, "utterly": 1.5, "truly": 1.3, "deeply": 1.3,
	"quite": 1.1, "pretty": 1.1, "somewhat": 0.7, "slightly": 0.6,
	"barely": 0.5, "little": 0.8,
}

// negators flip the polarity of the following sentiment word.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"nobody": true, "nothing": true, "nowhere": true, "hardly": true,
	"without": true, "cannot": true,
}
