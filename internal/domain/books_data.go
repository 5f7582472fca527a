package domain

// SeedBooks returns the fixed demo catalog. IDs, prices and default colors
// are part of the storefront's sample data set and never change at runtime.
func SeedBooks() []Book {
	return []Book{
		{ID: 0, Title: "The Fellowship of the Ring", Author: "J.R.R. Tolkien",
			Description: "The first volume of The Lord of the Rings. Frodo Baggins sets out from the Shire with a fellowship of companions to destroy a ring that would hand Middle-earth to the Dark Lord.",
			Price:       600, Color: ColorGreen},
		{ID: 1, Title: "Dune", Author: "Frank Herbert",
			Description: "On the desert planet Arrakis, Paul Atreides is drawn into a struggle over the spice melange, the most valuable substance in the universe, in a saga of prophecy, politics and revolution.",
			Price:       630, Color: ColorBrown},
		{ID: 2, Title: "Complete Tales of H.P. Lovecraft", Author: "H.P. Lovecraft",
			Description: "A single volume collecting Lovecraft's novel, novellas and short stories of cosmic horror, forbidden knowledge and humanity's insignificance in an indifferent universe.",
			Price:       850, Color: ColorPurple},
		{ID: 3, Title: "Lord of Light", Author: "Roger Zelazny",
			Description: "On a colonized world the crew of a long-crashed ship rule as Hindu gods, until one of their own takes the name Buddha and leads a rebellion against heaven.",
			Price:       550, Color: ColorPurple},
		{ID: 4, Title: "Harry Potter and the Philosopher's Stone", Author: "J.K. Rowling",
			Description: "An orphaned boy discovers on his eleventh birthday that he is a wizard, and at Hogwarts School of Witchcraft and Wizardry finds friends, enemies and a hidden stone of great power.",
			Price:       400, Color: ColorPurple},
		{ID: 5, Title: "Last Days", Author: "Brian Evenson",
			Description: "A detective maimed in the line of duty is pulled into an underground amputation cult that takes his missing hand as a mark of election, in a brutal noir of fanaticism and identity.",
			Price:       1000, Color: ColorBrown},
		{ID: 6, Title: "Nine Princes in Amber", Author: "Roger Zelazny",
			Description: "A man wakes in a hospital with no memory and discovers he is a prince of Amber, the one true world of which all others are shadows, and a contender for its throne.",
			Price:       1100, Color: ColorGreen},
		{ID: 7, Title: "Roadside Picnic", Author: "Arkady and Boris Strugatsky",
			Description: "Stalkers slip into the forbidden Zone left behind by an alien visitation to scavenge artifacts no one understands, at a price no one can predict.",
			Price:       720, Color: ColorGreen},
		{ID: 8, Title: "Monday Begins on Saturday", Author: "Arkady and Boris Strugatsky",
			Description: "A programmer is recruited by a research institute of magic and wizardry where Soviet bureaucracy meets folklore, and the working week never ends.",
			Price:       600, Color: ColorBrown},
		{ID: 9, Title: "Dead Space: Martyr", Author: "B.K. Evenson",
			Description: "A geophysicist investigating a strange signal in the Gulf of Mexico uncovers the buried Marker and the origins of a church built around it, long before the events aboard the Ishimura.",
			Price:       950, Color: ColorPurple},
	}
}
