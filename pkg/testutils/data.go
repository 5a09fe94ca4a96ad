package testutils

// FactReply is a raw LLM reply and the facts expected from it.
type FactReply struct {
	Name  string
	Reply string
	Facts []string
}

var TestFactReplies = []FactReply{
	{
		Name:  "json array",
		Reply: `["Cats sleep up to 16 hours a day.", "A group of cats is called a clowder."]`,
		Facts: []string{"Cats sleep up to 16 hours a day.", "A group of cats is called a clowder."},
	},
	{
		Name: "fenced json array",
		Reply: "```json\n" +
			`["Elephants can hear through their feet.", "Elephants mourn their dead."]` +
			"\n```",
		Facts: []string{"Elephants can hear through their feet.", "Elephants mourn their dead."},
	},
	{
		Name:  "plain text",
		Reply: "Dogs can smell fear. Dogs sweat through paws.",
		Facts: []string{"Dogs can smell fear. Dogs sweat through paws."},
	},
	{
		Name:  "comma separated",
		Reply: "Owls cannot move their eyes, Owls have asymmetrical ears,, 'Owls fly silently'",
		Facts: []string{
			"Owls cannot move their eyes",
			"Owls have asymmetrical ears",
			"Owls fly silently",
		},
	},
	{
		Name: "too many facts",
		Reply: `["Ants are strong.", "Ants farm fungi.", "Ants have no lungs.", ` +
			`"Ants can swim.", "Ants sleep in naps.", "Ants outnumber humans.", "Ants are old."]`,
		Facts: []string{
			"Ants are strong.",
			"Ants farm fungi.",
			"Ants have no lungs.",
			"Ants can swim.",
			"Ants sleep in naps.",
		},
	},
	{
		Name:  "empty",
		Reply: "",
		Facts: []string{},
	},
}
