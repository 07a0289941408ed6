package countries

// AliasEntry pairs a curated surface form with its canonical display name.
// The surface form is run through Normalize when the lookup table is built,
// so entries may be written the way they appear in source data.
type AliasEntry struct {
	Alias     string
	Canonical string
}

// aliasSeed is the curated alias list. Canonical names are fixed English
// display strings; several aliases may map to the same canonical name.
// Grouped by country, covering World Bank, UN and colloquial variants.
var aliasSeed = []AliasEntry{
	// Turkey
	{"Türkiye", "Turkey"},
	{"Turkiye Cumhuriyeti", "Turkey"},
	{"Republic of Turkey", "Turkey"},
	{"Turkey", "Turkey"},
	// Czechia
	{"Czech Republic", "Czechia"},
	{"Czechia", "Czechia"},
	// Russia
	{"Russian Federation", "Russia"},
	{"Russia", "Russia"},
	// Vietnam
	{"Viet Nam", "Vietnam"},
	{"Vietnam", "Vietnam"},
	// Syria
	{"Syrian Arab Republic", "Syria"},
	{"Syria", "Syria"},
	// Iran
	{"Iran, Islamic Republic of", "Iran"},
	{"Islamic Republic of Iran", "Iran"},
	{"Iran, Islamic Rep.", "Iran"},
	{"Iran", "Iran"},
	// Laos
	{"Lao PDR", "Laos"},
	{"Lao People's Democratic Republic", "Laos"},
	{"Laos", "Laos"},
	// Gambia
	{"Gambia, The", "Gambia"},
	{"The Gambia", "Gambia"},
	{"Gambia", "Gambia"},
	// Bahamas
	{"Bahamas, The", "Bahamas"},
	{"The Bahamas", "Bahamas"},
	{"Bahamas", "Bahamas"},
	// Cabo Verde
	{"Cabo Verde", "Cabo Verde"},
	{"Cape Verde", "Cabo Verde"},
	// Côte d'Ivoire
	{"Côte d'Ivoire", "Côte d’Ivoire"},
	{"Cote d'Ivoire", "Côte d’Ivoire"},
	{"Ivory Coast", "Côte d’Ivoire"},
	{"Ivory Coast (Côte d'Ivoire)", "Côte d’Ivoire"},
	// Eswatini
	{"Eswatini", "Eswatini"},
	{"Swaziland", "Eswatini"},
	// Myanmar
	{"Myanmar", "Myanmar"},
	{"Burma", "Myanmar"},
	// Timor-Leste
	{"Timor-Leste", "Timor-Leste"},
	{"East Timor", "Timor-Leste"},
	// Brunei
	{"Brunei Darussalam", "Brunei"},
	{"Brunei", "Brunei"},
	// Congo (DRC)
	{"Democratic Republic of the Congo", "Congo (Democratic Republic of the)"},
	{"Congo, Democratic Republic of the", "Congo (Democratic Republic of the)"},
	{"Congo, Dem. Rep.", "Congo (Democratic Republic of the)"},
	{"DR Congo", "Congo (Democratic Republic of the)"},
	{"DRC", "Congo (Democratic Republic of the)"},
	// Congo (Republic)
	{"Republic of the Congo", "Congo"},
	{"Congo, Rep.", "Congo"},
	{"Congo", "Congo"},
	// Korea (South)
	{"Korea, Rep.", "Korea, Republic of"},
	{"Republic of Korea", "Korea, Republic of"},
	{"South Korea", "Korea, Republic of"},
	{"Korea, Republic of", "Korea, Republic of"},
	// Korea (North), UN and WB and short forms
	{"Korea, Democratic People’s Republic of", "Korea, Democratic People’s Republic of"},
	{"Korea, Democratic Peoples Republic of", "Korea, Democratic People’s Republic of"},
	{"Democratic People's Republic of Korea", "Korea, Democratic People’s Republic of"},
	{"Democratic Peoples Republic of Korea", "Korea, Democratic People’s Republic of"},
	{"Dem. People's Republic of Korea", "Korea, Democratic People’s Republic of"},
	{"Dem. Peoples Republic of Korea", "Korea, Democratic People’s Republic of"},
	{"Korea, Dem. People's Rep.", "Korea, Democratic People’s Republic of"},
	{"North Korea", "Korea, Democratic People’s Republic of"},
	{"DPR Korea", "Korea, Democratic People’s Republic of"},
	{"DPRK", "Korea, Democratic People’s Republic of"},
	// Hong Kong / Macao
	{"China, Hong Kong SAR", "Hong Kong SAR, China"},
	{"Hong Kong SAR, China", "Hong Kong SAR, China"},
	{"Hong Kong", "Hong Kong SAR, China"},
	{"China, Macao SAR", "Macao SAR, China"},
	{"Macao SAR, China", "Macao SAR, China"},
	{"Macau", "Macao SAR, China"},
	{"Macao", "Macao SAR, China"},
	// Moldova
	{"Moldova", "Moldova"},
	{"Republic of Moldova", "Moldova"},
	// United States
	{"United States", "United States"},
	{"United States of America", "United States"},
	{"USA", "United States"},
	{"U.S.A.", "United States"},
	{"U.S.", "United States"},
	// United Kingdom
	{"United Kingdom", "United Kingdom"},
	{"UK", "United Kingdom"},
	{"U.K.", "United Kingdom"},
	{"Great Britain", "United Kingdom"},
	{"Britain", "United Kingdom"},
	// Palestine
	{"State of Palestine", "Palestine"},
	{"Palestine", "Palestine"},
	{"West Bank and Gaza", "Palestine"},
	// Territories / special cases
	{"Cocos (Keeling) Islands", "Cocos (Keeling) Islands"},
	{"Micronesia, Federated States of", "Micronesia, Federated States of"},
	{"Micronesia, Federal States of", "Micronesia, Federated States of"},
	{"Micronesia, Federated States", "Micronesia, Federated States of"},
	{"Micronesia, Fed. States of", "Micronesia, Federated States of"},
	{"Micronesia, Fed. States", "Micronesia, Federated States of"},
	{"Micronesia, Fed. Sts.", "Micronesia, Federated States of"},
	// Bolivia, Tanzania, Venezuela (UN names)
	{"Bolivia, Plurinational State of", "Bolivia (Plurinational State of)"},
	{"Bolivia", "Bolivia (Plurinational State of)"},
	{"Tanzania, United Republic of", "Tanzania, United Republic of"},
	{"United Republic of Tanzania", "Tanzania, United Republic of"},
	{"Tanzania", "Tanzania, United Republic of"},
	{"Venezuela, Bolivarian Republic of", "Venezuela (Bolivarian Republic of)"},
	{"Venezuela", "Venezuela (Bolivarian Republic of)"},
	// Bahrain (TR spelling)
	{"Bahrein", "Bahrain"},
	{"Bahrain", "Bahrain"},
	// WB/UN harmonization seen in source data
	{"Egypt, Arab Republic", "Egypt"},
	{"Egypt, Arab Rep.", "Egypt"},
	{"Egypt", "Egypt"},
	{"Curacao", "Curaçao"},
	{"Curaçao", "Curaçao"},
	{"Faroe Islands", "Faroe Islands"},
	{"Faeroe Islands", "Faroe Islands"},
	{"Slovak Republic", "Slovakia"},
	{"Slovakia", "Slovakia"},
	{"Kyrgyz Republic", "Kyrgyzstan"},
	{"Kyrgyzstan", "Kyrgyzstan"},
	{"North Macedonia", "North Macedonia"},
	{"Macedonia, the former Yugoslav Republic of", "North Macedonia"},
	{"Macedonia, former Yugoslav Republic of", "North Macedonia"},
	{"Macedonia (FYROM)", "North Macedonia"},
	{"Somalia, Fed. Rep.", "Somalia"},
	{"Somalia, Federal Republic", "Somalia"},
	{"Somalia", "Somalia"},
	{"Puerto Rico", "Puerto Rico"},
	{"Puerto Rico (US)", "Puerto Rico"},
	// UN territories that often appear
	{"Falkland Islands (Malvinas)", "Falkland Islands (Malvinas)"},
	{"Holy See", "Holy See"},
	{"Guadeloupe", "Guadeloupe"},
	{"Martinique", "Martinique"},
	{"Mayotte", "Mayotte"},
	{"French Guiana", "French Guiana"},
	{"Montserrat", "Montserrat"},
	{"Melanesia", "Melanesia"},
	{"Micronesia", "Micronesia"},
}
