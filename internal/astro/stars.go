package astro

// Star represents a cataloged star with position and brightness.
type Star struct {
	Name  string     // Common name (e.g., "Sirius", "Vega")
	Coord Equatorial // J2000 position
	Mag   float64    // Apparent visual magnitude (lower = brighter)
	Con   string     // IAU constellation abbreviation, empty if untagged
}

// StarCatalog holds a collection of stars for chart rendering.
type StarCatalog struct {
	Stars  []Star
	byName map[string]int
}

// BrightStarCatalog returns a catalog of bright named stars (J2000 epoch).
// Data sourced from the Yale Bright Star Catalog and IAU star names.
func BrightStarCatalog() StarCatalog {
	c := StarCatalog{Stars: brightStars}
	c.byName = make(map[string]int, len(brightStars))
	for i, s := range brightStars {
		c.byName[s.Name] = i
	}
	return c
}

// Lookup returns the named star, if cataloged.
func (c StarCatalog) Lookup(name string) (Star, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Star{}, false
	}
	return c.Stars[i], true
}

// brightStars lists stars ordered roughly by magnitude, brightest first.
var brightStars = []Star{
	// Magnitude < 0.5
	{"Sirius", Equatorial{101.287, -16.716}, -1.46, "CMa"},
	{"Canopus", Equatorial{95.988, -52.696}, -0.74, "Car"},
	{"Arcturus", Equatorial{213.915, 19.182}, -0.05, "Boo"},
	{"Vega", Equatorial{279.235, 38.784}, 0.03, "Lyr"},
	{"Capella", Equatorial{79.172, 45.998}, 0.08, "Aur"},
	{"Rigel", Equatorial{78.634, -8.202}, 0.13, "Ori"},
	{"Procyon", Equatorial{114.826, 5.225}, 0.34, "CMi"},
	{"Achernar", Equatorial{24.429, -57.237}, 0.46, "Eri"},

	// Magnitude 0.5-1.0
	{"Betelgeuse", Equatorial{88.793, 7.407}, 0.50, "Ori"},
	{"Hadar", Equatorial{210.956, -60.373}, 0.61, "Cen"},
	{"Altair", Equatorial{297.696, 8.868}, 0.76, "Aql"},
	{"Acrux", Equatorial{186.650, -63.099}, 0.76, "Cru"},
	{"Aldebaran", Equatorial{68.980, 16.509}, 0.85, "Tau"},
	{"Antares", Equatorial{247.352, -26.432}, 0.96, "Sco"},
	{"Spica", Equatorial{201.298, -11.161}, 0.97, "Vir"},

	// Magnitude 1.0-1.5
	{"Pollux", Equatorial{116.329, 28.026}, 1.14, "Gem"},
	{"Fomalhaut", Equatorial{344.413, -29.622}, 1.16, "PsA"},
	{"Deneb", Equatorial{310.358, 45.280}, 1.25, "Cyg"},
	{"Mimosa", Equatorial{191.930, -59.689}, 1.25, "Cru"},
	{"Regulus", Equatorial{152.093, 11.967}, 1.35, "Leo"},

	// Magnitude 1.5-2.0
	{"Adhara", Equatorial{104.656, -28.972}, 1.50, "CMa"},
	{"Castor", Equatorial{113.650, 31.889}, 1.58, "Gem"},
	{"Gacrux", Equatorial{187.791, -57.113}, 1.63, "Cru"},
	{"Shaula", Equatorial{263.402, -37.104}, 1.63, "Sco"},
	{"Bellatrix", Equatorial{81.283, 6.350}, 1.64, "Ori"},
	{"Elnath", Equatorial{81.573, 28.608}, 1.65, "Tau"},
	{"Miaplacidus", Equatorial{138.300, -69.717}, 1.68, "Car"},
	{"Alnilam", Equatorial{84.053, -1.202}, 1.69, "Ori"},
	{"Alnair", Equatorial{332.058, -46.961}, 1.74, "Gru"},
	{"Alnitak", Equatorial{85.190, -1.943}, 1.77, "Ori"},
	{"Alioth", Equatorial{193.507, 55.960}, 1.77, "UMa"},
	{"Dubhe", Equatorial{165.932, 61.751}, 1.79, "UMa"},
	{"Mirfak", Equatorial{51.081, 49.861}, 1.79, "Per"},
	{"Wezen", Equatorial{107.098, -26.393}, 1.84, "CMa"},
	{"Kaus Australis", Equatorial{276.043, -34.384}, 1.85, "Sgr"},
	{"Avior", Equatorial{125.629, -59.509}, 1.86, "Car"},
	{"Alkaid", Equatorial{206.885, 49.313}, 1.86, "UMa"},
	{"Sargas", Equatorial{264.330, -42.998}, 1.87, "Sco"},
	{"Menkalinan", Equatorial{89.882, 44.948}, 1.90, "Aur"},
	{"Atria", Equatorial{252.166, -69.028}, 1.92, "TrA"},
	{"Alhena", Equatorial{99.428, 16.399}, 1.93, "Gem"},
	{"Peacock", Equatorial{306.412, -56.735}, 1.94, "Pav"},
	{"Alsephina", Equatorial{131.176, -54.709}, 1.96, "Vel"},
	{"Mirzam", Equatorial{95.675, -17.956}, 1.98, "CMa"},

	// Magnitude 2.0-2.5
	{"Alphard", Equatorial{141.897, -8.659}, 2.00, "Hya"},
	{"Hamal", Equatorial{31.793, 23.463}, 2.00, "Ari"},
	{"Polaris", Equatorial{37.954, 89.264}, 2.02, "UMi"},
	{"Diphda", Equatorial{10.897, -17.987}, 2.02, "Cet"},
	{"Nunki", Equatorial{283.816, -26.297}, 2.02, "Sgr"},
	{"Mizar", Equatorial{200.981, 54.925}, 2.04, "UMa"},
	{"Mirach", Equatorial{17.433, 35.621}, 2.05, "And"},
	{"Alpheratz", Equatorial{2.097, 29.091}, 2.06, "And"},
	{"Menkent", Equatorial{211.671, -36.370}, 2.06, "Cen"},
	{"Algieba", Equatorial{146.463, 19.842}, 2.08, "Leo"},
	{"Kochab", Equatorial{222.676, 74.156}, 2.08, "UMi"},
	{"Rasalhague", Equatorial{263.734, 12.560}, 2.08, "Oph"},
	{"Saiph", Equatorial{86.939, -9.670}, 2.09, "Ori"},
	{"Algol", Equatorial{47.042, 40.957}, 2.12, "Per"},
	{"Denebola", Equatorial{177.265, 14.572}, 2.13, "Leo"},
	{"Muhlifain", Equatorial{190.379, -48.960}, 2.17, "Cen"},
	{"Suhail", Equatorial{136.999, -43.433}, 2.21, "Vel"},
	{"Mintaka", Equatorial{83.002, -0.299}, 2.23, "Ori"},
	{"Sadr", Equatorial{305.557, 40.257}, 2.23, "Cyg"},
	{"Eltanin", Equatorial{269.152, 51.489}, 2.23, "Dra"},
	{"Schedar", Equatorial{10.127, 56.537}, 2.23, "Cas"},
	{"Alphecca", Equatorial{233.672, 26.715}, 2.23, "CrB"},
	{"Naos", Equatorial{120.896, -40.003}, 2.25, "Pup"},
	{"Aspidiske", Equatorial{139.273, -59.275}, 2.25, "Car"},
	{"Caph", Equatorial{2.295, 59.150}, 2.27, "Cas"},
	{"Larawag", Equatorial{254.655, -34.293}, 2.29, "Sco"},
	{"Dschubba", Equatorial{240.083, -22.622}, 2.32, "Sco"},
	{"Merak", Equatorial{165.460, 56.382}, 2.37, "UMa"},
	{"Izar", Equatorial{221.247, 27.074}, 2.37, "Boo"},
	{"Enif", Equatorial{326.046, 9.875}, 2.39, "Peg"},
	{"Ankaa", Equatorial{6.571, -42.306}, 2.38, "Phe"},
	{"Girtab", Equatorial{265.622, -39.030}, 2.41, "Sco"},
	{"Scheat", Equatorial{345.944, 28.083}, 2.42, "Peg"},
	{"Sabik", Equatorial{257.595, -15.725}, 2.43, "Oph"},
	{"Phecda", Equatorial{178.458, 53.695}, 2.44, "UMa"},
	{"Aludra", Equatorial{111.024, -29.303}, 2.45, "CMa"},
	{"Markeb", Equatorial{140.528, -55.011}, 2.47, "Vel"},
	{"Navi", Equatorial{14.177, 60.717}, 2.47, "Cas"},
	{"Aljanah", Equatorial{311.553, 33.970}, 2.48, "Cyg"},
	{"Markab", Equatorial{346.190, 15.205}, 2.49, "Peg"},

	// Magnitude 2.5-3.0
	{"Alderamin", Equatorial{319.645, 62.586}, 2.51, "Cep"},
	{"Zosma", Equatorial{168.527, 20.524}, 2.56, "Leo"},
	{"Arneb", Equatorial{83.183, -17.822}, 2.58, "Lep"},
	{"Gienah", Equatorial{183.952, -17.542}, 2.59, "Crv"},
	{"Zubeneschamali", Equatorial{229.252, -9.383}, 2.61, "Lib"},
	{"Acrab", Equatorial{241.359, -19.805}, 2.62, "Sco"},
	{"Phact", Equatorial{84.912, -34.074}, 2.64, "Col"},
	{"Sheratan", Equatorial{28.660, 20.808}, 2.64, "Ari"},
	{"Unukalhai", Equatorial{236.067, 6.426}, 2.65, "Ser"},
	{"Kraz", Equatorial{188.597, -23.397}, 2.65, "Crv"},
	{"Ruchbah", Equatorial{21.454, 60.235}, 2.66, "Cas"},
	{"Hassaleh", Equatorial{75.492, 33.166}, 2.69, "Aur"},
	{"Tarazed", Equatorial{296.565, 10.613}, 2.72, "Aql"},
	{"Porrima", Equatorial{190.415, -1.449}, 2.74, "Vir"},
	{"Zubenelgenubi", Equatorial{222.720, -16.042}, 2.75, "Lib"},
	{"Yed Prior", Equatorial{243.586, -3.694}, 2.75, "Oph"},
	{"Cursa", Equatorial{76.963, -5.086}, 2.79, "Eri"},
	{"Imai", Equatorial{183.786, -58.749}, 2.79, "Cru"},
	{"Rastaban", Equatorial{262.608, 52.301}, 2.79, "Dra"},
	{"Cor Caroli", Equatorial{194.007, 38.318}, 2.81, "CVn"},
	{"Vindemiatrix", Equatorial{195.544, 10.959}, 2.83, "Vir"},
	{"Nihal", Equatorial{82.061, -20.759}, 2.84, "Lep"},
	{"Alcyone", Equatorial{56.871, 24.105}, 2.87, "Tau"},
	{"Fawaris", Equatorial{296.244, 45.131}, 2.87, "Cyg"},
	{"Tejat", Equatorial{95.740, 22.513}, 2.88, "Gem"},
	{"Gomeisa", Equatorial{111.788, 8.289}, 2.90, "CMi"},
	{"Sadalsuud", Equatorial{322.890, -5.571}, 2.91, "Aqr"},
	{"Algorab", Equatorial{187.466, -16.515}, 2.95, "Crv"},
	{"Sadalmelik", Equatorial{331.446, -0.320}, 2.96, "Aqr"},
	{"Pherkad", Equatorial{230.182, 71.834}, 3.00, "UMi"},

	// Magnitude 3.0-4.0
	{"Minkar", Equatorial{182.531, -22.620}, 3.02, "Crv"},
	{"Hoedus I", Equatorial{75.620, 41.234}, 3.04, "Aur"},
	{"Tania Australis", Equatorial{155.582, 41.499}, 3.05, "UMa"},
	{"Mebsuta", Equatorial{100.983, 25.131}, 3.06, "Gem"},
	{"Talitha", Equatorial{134.802, 48.042}, 3.14, "UMa"},
	{"Aldhibah", Equatorial{256.343, 65.715}, 3.17, "Dra"},
	{"Albireo", Equatorial{292.680, 27.960}, 3.18, "Cyg"},
	{"Propus", Equatorial{93.719, 22.506}, 3.28, "Gem"},
	{"Edasich", Equatorial{231.232, 58.966}, 3.29, "Dra"},
	{"Megrez", Equatorial{183.857, 57.033}, 3.31, "UMa"},
	{"Chertan", Equatorial{168.560, 15.430}, 3.33, "Leo"},
	{"Muscida", Equatorial{127.566, 60.718}, 3.35, "UMa"},
	{"Segin", Equatorial{28.599, 63.670}, 3.37, "Cas"},
	{"Auva", Equatorial{192.855, 3.397}, 3.38, "Vir"},
	{"Adhafera", Equatorial{154.173, 23.417}, 3.43, "Leo"},
	{"Tania Borealis", Equatorial{154.274, 42.914}, 3.45, "UMa"},
	{"Alula Borealis", Equatorial{169.620, 33.094}, 3.49, "UMa"},
	{"Subra", Equatorial{148.191, 9.893}, 3.52, "Leo"},
	{"Wasat", Equatorial{110.031, 21.982}, 3.53, "Gem"},
	{"Chi Dra", Equatorial{274.966, 72.733}, 3.57, "Dra"},
	{"Zavijava", Equatorial{177.674, 1.765}, 3.61, "Vir"},
	{"Thuban", Equatorial{211.097, 64.376}, 3.65, "Dra"},
	{"Saclateni", Equatorial{79.402, 40.010}, 3.69, "Aur"},
	{"Alshain", Equatorial{298.828, 6.407}, 3.71, "Aql"},
	{"Grumium", Equatorial{268.382, 56.873}, 3.75, "Dra"},
	{"Alula Australis", Equatorial{169.545, 31.529}, 3.78, "UMa"},
	{"Epsilon Dra", Equatorial{297.043, 70.268}, 3.83, "Dra"},
	{"Giausar", Equatorial{175.942, 69.331}, 3.85, "Dra"},
	{"Wazn", Equatorial{90.399, -35.768}, 3.85, "Col"},
	{"Rasalas", Equatorial{146.463, 26.007}, 3.88, "Leo"},
	{"Zaniah", Equatorial{184.976, -0.667}, 3.89, "Vir"},
	{"Furud", Equatorial{95.078, -30.063}, 3.96, "CMa"},
	{"Alcor", Equatorial{201.306, 54.988}, 3.99, "UMa"},

	// Magnitude 4.0+ (dim background stars, add sky density)
	{"Tyl", Equatorial{288.439, 67.661}, 4.01, "Dra"},
	{"Alkes", Equatorial{164.944, -18.299}, 4.08, "Crt"},
	{"Gianfar", Equatorial{284.073, 75.388}, 4.13, "Dra"},
	{"Acubens", Equatorial{134.622, 11.858}, 4.25, "Cnc"},
	{"Chara", Equatorial{188.436, 41.357}, 4.26, "CVn"},
	{"Alterf", Equatorial{139.711, 22.968}, 4.31, "Leo"},
	{"Diadem", Equatorial{197.497, 17.529}, 4.32, "Com"},
	{"Yildun", Equatorial{263.054, 86.586}, 4.36, "UMi"},
	{"Sceptrum", Equatorial{62.966, -8.898}, 4.45, "Eri"},
	{"Dziban", Equatorial{270.162, 72.149}, 4.54, "Dra"},
	{"Asellus Borealis", Equatorial{130.821, 21.469}, 4.66, "Cnc"},
	{"Alrakis", Equatorial{245.998, 61.514}, 4.67, "Dra"},
	{"Alsafi", Equatorial{282.520, 52.301}, 4.67, "Dra"},
}
