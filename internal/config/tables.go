package config

import (
	"bevintel/internal/artifacts"
	"bevintel/internal/enrich"
	"bevintel/internal/feeds"
	"bevintel/internal/region"
)

// DefaultTables returns the built-in feed table, region definitions, keyword
// dictionaries and market figures. Callers must treat the result as
// immutable.
func DefaultTables() Tables {
	return Tables{
		Feeds:        defaultFeeds(),
		Regions:      defaultRegions(),
		Include:      includeKeywords(),
		Exclude:      excludeKeywords(),
		Dictionaries: defaultDictionaries(),
		Market:       defaultMarket(),
	}
}

// defaultFeeds is the feed table. Tier reflects source reliability: direct
// trade press is tier 1, site-scoped news queries tier 2, broad keyword
// queries tier 3.
func defaultFeeds() []feeds.Descriptor {
	return []feeds.Descriptor{
		// Global industry trade press.
		{Name: "GNews: BeverageDaily", URL: "https://news.google.com/rss/search?q=site:beveragedaily.com&hl=en&gl=US&ceid=US:en", Tier: 2, Regions: []string{"global"}, Category: "launch"},
		{Name: "GNews: FoodNavigator", URL: "https://news.google.com/rss/search?q=site:foodnavigator.com+beverage+OR+drink+OR+juice&hl=en&gl=US&ceid=US:en", Tier: 2, Regions: []string{"global"}, Category: "trend"},
		{Name: "GNews: FoodNavigator-USA", URL: "https://news.google.com/rss/search?q=site:foodnavigator-usa.com+beverage+OR+drink&hl=en&gl=US&ceid=US:en", Tier: 2, Regions: []string{"usa"}, Category: "trend"},
		{Name: "GNews: Just-Drinks", URL: "https://news.google.com/rss/search?q=site:just-drinks.com&hl=en&gl=US&ceid=US:en", Tier: 2, Regions: []string{"global"}, Category: "market"},
		{Name: "FoodDive", URL: "https://www.fooddive.com/feeds/news/", Tier: 1, Regions: []string{"usa"}, Category: "trend"},
		{Name: "Drinks Business", URL: "https://www.thedrinksbusiness.com/feed/", Tier: 1, Regions: []string{"global"}, Category: "market"},

		// USA.
		{Name: "GNews: US Beverage Launches", URL: "https://news.google.com/rss/search?q=(beverage+OR+drink+OR+juice)+(launch+OR+%22new+product%22+OR+%22new+range%22)+USA&hl=en&gl=US&ceid=US:en", Tier: 3, Regions: []string{"usa"}, Category: "launch"},
		{Name: "GNews: US Beverage Trends", URL: "https://news.google.com/rss/search?q=(beverage+OR+drink+OR+juice)+(trend+OR+consumer+OR+demand+OR+market)+%22United+States%22&hl=en&gl=US&ceid=US:en", Tier: 3, Regions: []string{"usa"}, Category: "trend"},
		{Name: "GNews: FDA Beverage Regulation", URL: "https://news.google.com/rss/search?q=FDA+(beverage+OR+drink+OR+juice)+(regulation+OR+labelling+OR+rule+OR+ban)&hl=en&gl=US&ceid=US:en", Tier: 3, Regions: []string{"usa"}, Category: "regulation"},

		// Germany / DACH.
		{Name: "GNews: FoodNavigator Germany", URL: "https://news.google.com/rss/search?q=site:foodnavigator.com+(germany+OR+german+OR+deutschland+OR+DACH+OR+austria)&hl=en&gl=DE&ceid=DE:en", Tier: 2, Regions: []string{"germany", "austria"}, Category: "trend"},
		{Name: "GNews: Germany Beverage Market", URL: "https://news.google.com/rss/search?q=(Getraenk+OR+Getraenke+OR+Saft+OR+beverage+OR+drink)+(Markt+OR+market+OR+launch+OR+trend)+Deutschland&hl=de&gl=DE&ceid=DE:de", Tier: 3, Regions: []string{"germany"}, Category: "market"},
		{Name: "GNews: Germany Juice/Beverage Launches", URL: "https://news.google.com/rss/search?q=(juice+OR+beverage+OR+energy+drink+OR+functional+drink)+(launch+OR+new+OR+trend)+(Germany+OR+DACH)&hl=en&gl=DE&ceid=DE:en", Tier: 3, Regions: []string{"germany"}, Category: "launch"},
		{Name: "GNews: EU Beverage Regulation", URL: "https://news.google.com/rss/search?q=(beverage+OR+drink+OR+juice)+(regulation+OR+Nutri-Score+OR+PPWR+OR+packaging+OR+sugar+tax)+%22European+Union%22+OR+EU&hl=en&gl=DE&ceid=DE:en", Tier: 3, Regions: []string{"germany", "france", "spain", "italy", "austria"}, Category: "regulation"},

		// France.
		{Name: "GNews: France Beverage Market", URL: "https://news.google.com/rss/search?q=(boisson+OR+jus+OR+beverage+OR+drink)+(marche+OR+lancement+OR+tendance+OR+market+OR+launch+OR+trend)+France&hl=fr&gl=FR&ceid=FR:fr", Tier: 3, Regions: []string{"france"}, Category: "market"},
		{Name: "GNews: France Food Launches", URL: "https://news.google.com/rss/search?q=(juice+OR+beverage+OR+boisson)+(launch+OR+nouveau+OR+new+OR+trend)+France&hl=en&gl=FR&ceid=FR:en", Tier: 3, Regions: []string{"france"}, Category: "launch"},
		{Name: "GNews: France EGAlim / Regulation", URL: "https://news.google.com/rss/search?q=(EGAlim+OR+Nutri-Score+OR+Eco-Score+OR+%22sugar+tax%22+OR+taxe+sucre)+(boisson+OR+jus+OR+beverage)&hl=fr&gl=FR&ceid=FR:fr", Tier: 3, Regions: []string{"france"}, Category: "regulation"},

		// Spain.
		{Name: "GNews: Spain Beverage Market", URL: "https://news.google.com/rss/search?q=(bebida+OR+zumo+OR+juice+OR+beverage)+(mercado+OR+market+OR+lanzamiento+OR+launch+OR+tendencia)+Spain+OR+Espana&hl=es&gl=ES&ceid=ES:es", Tier: 3, Regions: []string{"spain"}, Category: "market"},
		{Name: "GNews: Spain Horeca Drinks", URL: "https://news.google.com/rss/search?q=(beverage+OR+drink+OR+juice)+(Horeca+OR+bar+OR+restaurant+OR+hotel)+Spain&hl=en&gl=ES&ceid=ES:en", Tier: 3, Regions: []string{"spain"}, Category: "trend"},
		{Name: "GNews: Spain Food Regulation", URL: "https://news.google.com/rss/search?q=(beverage+OR+bebida+OR+zumo)+(impuesto+OR+tax+OR+regulation+OR+etiquetado+OR+labelling)+Spain&hl=en&gl=ES&ceid=ES:en", Tier: 3, Regions: []string{"spain"}, Category: "regulation"},

		// Italy.
		{Name: "GNews: Italy Beverage Market", URL: "https://news.google.com/rss/search?q=(bevanda+OR+succo+OR+beverage+OR+drink)+(mercato+OR+market+OR+lancio+OR+launch+OR+tendenza)+Italy+OR+Italia&hl=it&gl=IT&ceid=IT:it", Tier: 3, Regions: []string{"italy"}, Category: "market"},
		{Name: "GNews: Italy Aperitivo Drinks", URL: "https://news.google.com/rss/search?q=(aperitivo+OR+aperitif+OR+spritz+OR+mixer)+(beverage+OR+drink+OR+juice+OR+succo)+Italy&hl=en&gl=IT&ceid=IT:en", Tier: 3, Regions: []string{"italy"}, Category: "trend"},
		{Name: "GNews: Italy Food Launch", URL: "https://news.google.com/rss/search?q=(juice+OR+beverage+OR+functional+drink)+(launch+OR+nuovo+OR+new+OR+organic+OR+bio)+Italy&hl=en&gl=IT&ceid=IT:en", Tier: 3, Regions: []string{"italy"}, Category: "launch"},

		// Austria.
		{Name: "GNews: Austria Beverage", URL: "https://news.google.com/rss/search?q=(Getraenk+OR+Saft+OR+beverage+OR+drink+OR+juice)+(Markt+OR+market+OR+launch+OR+Bio+OR+organic)+Austria+OR+Oesterreich&hl=de&gl=AT&ceid=AT:de", Tier: 3, Regions: []string{"austria"}, Category: "market"},
		{Name: "GNews: Red Bull / Austria Innovation", URL: "https://news.google.com/rss/search?q=(%22Red+Bull%22+OR+%22Rauch%22+OR+%22Voelkel%22)+(launch+OR+new+OR+organic+OR+innovation)&hl=en&gl=AT&ceid=AT:en", Tier: 3, Regions: []string{"austria"}, Category: "launch"},

		// Global trends & pricing.
		{Name: "GNews: Global Beverage Trends", URL: "https://news.google.com/rss/search?q=(beverage+OR+drink+OR+juice)+(trend+OR+%22consumer+trend%22+OR+%22market+trend%22+OR+innovation)+(2025+OR+2026)&hl=en&gl=US&ceid=US:en", Tier: 3, Regions: []string{"global"}, Category: "trend"},
		{Name: "GNews: Functional Beverages", URL: "https://news.google.com/rss/search?q=%22functional+beverage%22+OR+%22functional+drink%22+OR+%22adaptogen+drink%22+(launch+OR+market+OR+trend)&hl=en&gl=US&ceid=US:en", Tier: 3, Regions: []string{"global"}, Category: "trend"},
		{Name: "GNews: Energy Drinks Market", URL: "https://news.google.com/rss/search?q=%22energy+drink%22+(market+OR+launch+OR+regulation+OR+trend)+(Europe+OR+USA+OR+global)&hl=en&gl=US&ceid=US:en", Tier: 3, Regions: []string{"global"}, Category: "market"},
		{Name: "GNews: Sugar Tax Beverage", URL: "https://news.google.com/rss/search?q=%22sugar+tax%22+OR+%22sugar+levy%22+(beverage+OR+drink+OR+juice)+(Europe+OR+EU+OR+UK+OR+Germany+OR+France+OR+Spain)&hl=en&gl=US&ceid=US:en", Tier: 3, Regions: []string{"global"}, Category: "regulation"},
		{Name: "GNews: Beverage Pricing / Commodities", URL: "https://news.google.com/rss/search?q=(beverage+OR+drink+OR+juice)+(price+OR+pricing+OR+cost+OR+inflation+OR+commodity)+(2025+OR+2026)&hl=en&gl=US&ceid=US:en", Tier: 3, Regions: []string{"global"}, Category: "pricing"},
		{Name: "GNews: RTD / Ready-to-Drink", URL: "https://news.google.com/rss/search?q=%22ready+to+drink%22+OR+%22RTD%22+(juice+OR+beverage+OR+coffee+OR+tea)+(launch+OR+market+OR+trend)&hl=en&gl=US&ceid=US:en", Tier: 3, Regions: []string{"global"}, Category: "launch"},
		{Name: "GNews: No-Low Alcohol Beverages", URL: "https://news.google.com/rss/search?q=(%22no-alcohol%22+OR+%22non-alcoholic%22+OR+%22low-alcohol%22+OR+%22alcohol-free%22)+(beverage+OR+drink)+(market+OR+launch+OR+trend)&hl=en&gl=US&ceid=US:en", Tier: 3, Regions: []string{"global"}, Category: "trend"},
		{Name: "GNews: EU Food Law / Packaging", URL: "https://news.google.com/rss/search?q=(PPWR+OR+%22EU+packaging%22+OR+%22Nutri-Score%22+OR+%22Farm+to+Fork%22)+(beverage+OR+drink+OR+food)&hl=en&gl=US&ceid=US:en", Tier: 3, Regions: []string{"global"}, Category: "regulation"},
	}
}

func defaultRegions() []region.Definition {
	return []region.Definition{
		{
			ID: "usa", Name: "United States", Currency: "USD",
			Keywords: []string{"usa", "united states", "american", "fda", "us market", "north america"},
		},
		{
			ID: "germany", Name: "Germany", Currency: "EUR",
			Keywords: []string{"germany", "german", "deutschland", "dach", "bundesrat", "lebensmittel"},
		},
		{
			ID: "france", Name: "France", Currency: "EUR",
			Keywords: []string{"france", "french", "paris", "francais", "egalim", "leclerc", "carrefour"},
		},
		{
			ID: "spain", Name: "Spain", Currency: "EUR",
			Keywords: []string{"spain", "spanish", "espana", "madrid", "barcelona", "mercadona", "horeca spain"},
		},
		{
			ID: "italy", Name: "Italy", Currency: "EUR",
			Keywords: []string{"italy", "italian", "italia", "milan", "rome", "aperitivo", "esselunga"},
		},
		{
			ID: "austria", Name: "Austria", Currency: "EUR",
			Keywords: []string{"austria", "austrian", "wien", "vienna", "spar austria", "hofer", "alnatura"},
			// "australia" shares almost the whole word with "austrian"
			// headlines; block it outright.
			NegativeKeywords: []string{"australia", "australian"},
		},
	}
}

// includeKeywords: an article must contain at least one of these to stay in
// the pipeline.
func includeKeywords() []string {
	return []string{
		"beverage", "drink", "juice", "soft drink", "energy drink", "smoothie",
		"water", "tea", "coffee", "rtd", "ready to drink", "functional",
		"boisson", "bebida", "getraenk", "succo", "saft", "jus",
		"carbonat", "sparkling", "still water", "flavour", "flavor",
		"launch", "new product", "innovation", "market", "trend", "consumer",
		"sugar tax", "nutri-score", "packaging", "regulation", "labelling",
		"prix", "price", "pricing", "commodity", "ingredient cost",
	}
}

// excludeKeywords: one hit rejects the article, inclusion terms or not.
func excludeKeywords() []string {
	return []string{
		"cryptocurrency", "bitcoin", "stock market", "nasdaq", "nyse",
		"real estate", "mortgage", "auto loan", "car insurance",
		"celebrity", "gossip", "sports score", "football result",
		"recipe", "cooking tip", "how to make", "diy",
		"wine",
	}
}

func defaultDictionaries() enrich.Dictionaries {
	return enrich.Dictionaries{
		// Rule order is the prioritization contract: regulation outranks
		// pricing outranks launch outranks trend outranks market.
		CategoryRules: []enrich.CategoryRule{
			{Category: enrich.CategoryRegulation, Keywords: []string{"regulation", "regulat", "law", "directive", "tax", "ban", "label", "nutri", "ppwr", "egalim"}},
			{Category: enrich.CategoryPricing, Keywords: []string{"price", "cost", "inflation", "commodity", "margin", "tariff", "import cost"}},
			{Category: enrich.CategoryLaunch, Keywords: []string{"launch", "new product", "new range", "introduces", "unveil", "debut", "release"}},
			{Category: enrich.CategoryTrend, Keywords: []string{"trend", "consumer", "demand", "growth", "insight", "report", "forecast"}},
			{Category: enrich.CategoryMarket, Keywords: []string{"market", "share", "volume", "revenue", "sales", "retail", "channel"}},
		},
		Companies: []string{
			"Coca-Cola", "PepsiCo", "Nestle", "Danone", "Red Bull", "Monster",
			"Celsius", "Keurig Dr Pepper", "Britvic", "Starbucks", "Oatly",
			"Fever-Tree", "San Pellegrino", "Rauch", "Eckes-Granini", "Tropicana",
			"Aldi", "Lidl", "Carrefour", "Leclerc", "Mercadona", "Walmart",
			"Campari", "Aperol", "Innocent",
		},
		Ingredients: []string{
			"caffeine", "taurine", "guarana", "stevia", "aspartame", "sucralose",
			"juice concentrate", "fruit concentrate", "vitamin c", "ginseng",
			"electrolyte", "collagen", "adaptogen",
		},
		Packaging: []string{
			"pet bottle", "aluminium can", "aluminum can", "glass bottle",
			"tetra pak", "carton", "pouch", "multipack", "recyclable",
			"returnable", "deposit scheme",
		},
		Channels: []string{"retail", "e-commerce", "online", "horeca", "foodservice"},
		Tags: []enrich.TagRule{
			{Tag: "energy", Keywords: []string{"energy drink", "energy shot", "caffeine", "taurine", "guarana", "celsius", "monster", "red bull"}},
			{Tag: "functional", Keywords: []string{"functional", "adaptogen", "nootropic", "probiotic", "prebiotic", "gut health", "immunity"}},
			{Tag: "sugar_free", Keywords: []string{"sugar free", "zero sugar", "no sugar", "diet ", "low calorie", "stevia"}},
			{Tag: "juice", Keywords: []string{"juice", "nfc", "cold pressed", "smoothie", "nectar", "concentrate"}},
			{Tag: "rtd", Keywords: []string{"rtd", "ready to drink", "ready-to-drink"}},
			{Tag: "carbonated", Keywords: []string{"carbonated", "sparkling", "soda", "seltzer"}},
			{Tag: "alcohol_free", Keywords: []string{"non-alcoholic", "alcohol-free", "zero alcohol", "alcohol free", "mocktail"}},
			{Tag: "organic", Keywords: []string{"organic", " bio "}},
			{Tag: "coffee_tea", Keywords: []string{"coffee", "tea ", "matcha", "cold brew", "iced tea"}},
			{Tag: "water", Keywords: []string{"water", "mineral water", "sparkling water"}},
		},
		WhyItMatters: map[enrich.Category]string{
			enrich.CategoryLaunch:     "New product launch signals competitive activity. Assess portfolio overlap and positioning.",
			enrich.CategoryTrend:      "Consumer trend shift. Consider portfolio alignment and marketing messaging.",
			enrich.CategoryPricing:    "Pricing shift affects margins and positioning. Review contract and shelf price impact.",
			enrich.CategoryRegulation: "Regulatory change may require reformulation or relabeling. Monitor compliance timelines.",
			enrich.CategoryMarket:     "Market development may create opportunities or threats. Brief key accounts.",
		},
		SalesAngles: map[enrich.Category][]string{
			enrich.CategoryLaunch:     {"Map against portfolio for overlap", "Brief sales team on positioning"},
			enrich.CategoryTrend:      {"Include in next customer presentation", "Align marketing messaging"},
			enrich.CategoryPricing:    {"Review pricing vs competitors", "Prepare margin impact analysis"},
			enrich.CategoryRegulation: {"Check compliance timeline", "Brief customers on regulatory impact"},
			enrich.CategoryMarket:     {"Brief key account managers", "Review listing strategy"},
		},
	}
}

func defaultMarket() map[string]artifacts.MarketFigures {
	const statistaBase = "https://www.statista.com/outlook/cmo/non-alcoholic-drinks/"
	note := "Order-of-magnitude estimate."
	return map[string]artifacts.MarketFigures{
		"usa":     {SizeValue: 265, SizeUnit: "USD_B", GrowthPct: 3.0, Year: 2024, SourceName: "Statista", SourceURL: statistaBase + "united-states", LastVerified: "2025-01-15", Notes: note},
		"germany": {SizeValue: 29, SizeUnit: "EUR_B", GrowthPct: 2.0, Year: 2024, SourceName: "Statista", SourceURL: statistaBase + "germany", LastVerified: "2025-01-15", Notes: note},
		"france":  {SizeValue: 22, SizeUnit: "EUR_B", GrowthPct: 2.0, Year: 2024, SourceName: "Statista", SourceURL: statistaBase + "france", LastVerified: "2025-01-15", Notes: note},
		"spain":   {SizeValue: 12, SizeUnit: "EUR_B", GrowthPct: 3.0, Year: 2024, SourceName: "Statista", SourceURL: statistaBase + "spain", LastVerified: "2025-01-15", Notes: note},
		"italy":   {SizeValue: 18, SizeUnit: "EUR_B", GrowthPct: 3.0, Year: 2024, SourceName: "Statista", SourceURL: statistaBase + "italy", LastVerified: "2025-01-15", Notes: note},
		"austria": {SizeValue: 5, SizeUnit: "EUR_B", GrowthPct: 2.0, Year: 2024, SourceName: "Statista", SourceURL: statistaBase + "austria", LastVerified: "2025-01-15", Notes: note},
	}
}
