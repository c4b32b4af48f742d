package fake

// Word pools for the name/text fakers. Small on purpose; the point is
// plausible-looking values, not linguistic variety.

var firstNames = []string{
	"Ada", "Alan", "Barbara", "Claude", "Dennis", "Donald", "Edsger",
	"Frances", "Grace", "John", "Katherine", "Ken", "Leslie", "Linus",
	"Margaret", "Niklaus", "Radia", "Rob", "Robert", "Tony",
}

var lastNames = []string{
	"Allen", "Berners-Lee", "Dijkstra", "Hamilton", "Hopper", "Kernighan",
	"Knuth", "Lamport", "Liskov", "Lovelace", "McCarthy", "Perlman",
	"Pike", "Ritchie", "Shannon", "Stroustrup", "Thompson", "Torvalds",
	"Turing", "Wirth",
}

var domains = []string{
	"example.com", "example.org", "example.net", "mail.test", "corp.test",
}

var words = []string{
	"alpha", "beacon", "cedar", "delta", "ember", "fjord", "granite",
	"harbor", "indigo", "juniper", "kelp", "lantern", "meadow", "nickel",
	"onyx", "prairie", "quartz", "ridge", "spruce", "timber", "umber",
	"violet", "willow", "xenon", "yarrow", "zephyr",
}
