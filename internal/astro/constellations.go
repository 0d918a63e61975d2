package astro

// Constellation holds a named line figure drawn between catalog stars.
type Constellation struct {
	Name  string      // Full name (e.g., "Orion")
	Abbr  string      // IAU abbreviation (e.g., "Ori")
	Lines [][2]string // Star name pairs, each drawn as a great-circle arc
}

// ConstellationSet returns the built-in constellation figures.
// Every referenced star exists in BrightStarCatalog.
func ConstellationSet() []Constellation {
	return constellations
}

var constellations = []Constellation{
	{
		Name: "Orion", Abbr: "Ori",
		Lines: [][2]string{
			{"Betelgeuse", "Bellatrix"},
			{"Bellatrix", "Mintaka"},
			{"Mintaka", "Alnilam"},
			{"Alnilam", "Alnitak"},
			{"Mintaka", "Rigel"},
			{"Alnitak", "Saiph"},
			{"Saiph", "Rigel"},
			{"Betelgeuse", "Alnitak"},
		},
	},
	{
		Name: "Ursa Major", Abbr: "UMa",
		Lines: [][2]string{
			{"Dubhe", "Merak"},
			{"Merak", "Phecda"},
			{"Phecda", "Megrez"},
			{"Megrez", "Dubhe"},
			{"Megrez", "Alioth"},
			{"Alioth", "Mizar"},
			{"Mizar", "Alkaid"},
		},
	},
	{
		Name: "Ursa Minor", Abbr: "UMi",
		Lines: [][2]string{
			{"Polaris", "Yildun"},
			{"Yildun", "Pherkad"},
			{"Pherkad", "Kochab"},
			{"Kochab", "Polaris"},
		},
	},
	{
		Name: "Cassiopeia", Abbr: "Cas",
		Lines: [][2]string{
			{"Caph", "Schedar"},
			{"Schedar", "Navi"},
			{"Navi", "Ruchbah"},
			{"Ruchbah", "Segin"},
		},
	},
	{
		Name: "Crux", Abbr: "Cru",
		Lines: [][2]string{
			{"Acrux", "Gacrux"},
			{"Mimosa", "Imai"},
		},
	},
	{
		Name: "Cygnus", Abbr: "Cyg",
		Lines: [][2]string{
			{"Deneb", "Sadr"},
			{"Sadr", "Albireo"},
			{"Sadr", "Aljanah"},
			{"Sadr", "Fawaris"},
		},
	},
	{
		Name: "Scorpius", Abbr: "Sco",
		Lines: [][2]string{
			{"Acrab", "Dschubba"},
			{"Dschubba", "Antares"},
			{"Antares", "Larawag"},
			{"Larawag", "Sargas"},
			{"Sargas", "Girtab"},
			{"Girtab", "Shaula"},
		},
	},
	{
		Name: "Canis Major", Abbr: "CMa",
		Lines: [][2]string{
			{"Mirzam", "Sirius"},
			{"Sirius", "Wezen"},
			{"Wezen", "Adhara"},
			{"Wezen", "Aludra"},
		},
	},
	{
		Name: "Leo", Abbr: "Leo",
		Lines: [][2]string{
			{"Regulus", "Algieba"},
			{"Algieba", "Adhafera"},
			{"Adhafera", "Rasalas"},
			{"Algieba", "Zosma"},
			{"Zosma", "Denebola"},
			{"Denebola", "Chertan"},
			{"Chertan", "Regulus"},
		},
	},
	{
		Name: "Gemini", Abbr: "Gem",
		Lines: [][2]string{
			{"Castor", "Mebsuta"},
			{"Mebsuta", "Tejat"},
			{"Tejat", "Propus"},
			{"Pollux", "Wasat"},
			{"Wasat", "Alhena"},
			{"Castor", "Pollux"},
		},
	},
	{
		Name: "Taurus", Abbr: "Tau",
		Lines: [][2]string{
			{"Aldebaran", "Elnath"},
			{"Aldebaran", "Alcyone"},
		},
	},
	{
		Name: "Aquila", Abbr: "Aql",
		Lines: [][2]string{
			{"Tarazed", "Altair"},
			{"Altair", "Alshain"},
		},
	},
}
