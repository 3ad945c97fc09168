package models

// Cuisine is the kind of food a promotion is for.
type Cuisine string

const (
	CuisineAfghan            Cuisine = "Afghan"
	CuisineAinu              Cuisine = "Ainu"
	CuisineAlbanian          Cuisine = "Albanian"
	CuisineAlgerian          Cuisine = "Algerian"
	CuisineAmerican          Cuisine = "American"
	CuisineAndhra            Cuisine = "Andhra"
	CuisineAngloIndian       Cuisine = "Anglo-Indian"
	CuisineArab              Cuisine = "Arab"
	CuisineArgentine         Cuisine = "Argentine"
	CuisineArmenian          Cuisine = "Armenian"
	CuisineAssyrian          Cuisine = "Assyrian"
	CuisineAwadhi            Cuisine = "Awadhi"
	CuisineAzerbaijani       Cuisine = "Azerbaijani"
	CuisineBalochi           Cuisine = "Balochi"
	CuisineBangladeshi       Cuisine = "Bangladeshi"
	CuisineBelarusian        Cuisine = "Belarusian"
	CuisineBelgian           Cuisine = "Belgian"
	CuisineBengali           Cuisine = "Bengali"
	CuisineBerber            Cuisine = "Berber"
	CuisineBrazilian         Cuisine = "Brazilian"
	CuisineBritish           Cuisine = "British"
	CuisineBuddhist          Cuisine = "Buddhist"
	CuisineBulgarian         Cuisine = "Bulgarian"
	CuisineCajun             Cuisine = "Cajun"
	CuisineCanadian          Cuisine = "Canadian"
	CuisineCantonese         Cuisine = "Cantonese"
	CuisineCaribbean         Cuisine = "Caribbean"
	CuisineChechen           Cuisine = "Chechen"
	CuisineChinese           Cuisine = "Chinese"
	CuisineChineseIslamic    Cuisine = "Chinese Islamic"
	CuisineCircassian        Cuisine = "Circassian"
	CuisineCrimeanTatar      Cuisine = "Crimean Tatar"
	CuisineCuban             Cuisine = "Cuban"
	CuisineCypriot           Cuisine = "Cypriot"
	CuisineCzech             Cuisine = "Czech"
	CuisineDanish            Cuisine = "Danish"
	CuisineEgyptian          Cuisine = "Egyptian"
	CuisineEnglish           Cuisine = "English"
	CuisineEritrean          Cuisine = "Eritrean"
	CuisineEstonian          Cuisine = "Estonian"
	CuisineEthiopian         Cuisine = "Ethiopian"
	CuisineFilipino          Cuisine = "Filipino"
	CuisineFrench            Cuisine = "French"
	CuisineGeorgian          Cuisine = "Georgian"
	CuisineGerman            Cuisine = "German"
	CuisineGoan              Cuisine = "Goan"
	CuisineGoanCatholic      Cuisine = "Goan Catholic"
	CuisineGreek             Cuisine = "Greek"
	CuisineGujarati          Cuisine = "Gujarati"
	CuisineHaitian           Cuisine = "Haitian"
	CuisineHawaiian          Cuisine = "Hawaiian"
	CuisineHyderabad         Cuisine = "Hyderabad"
	CuisineIndian            Cuisine = "Indian"
	CuisineIndianChinese     Cuisine = "Indian Chinese"
	CuisineIndianSingaporean Cuisine = "Indian Singaporean"
	CuisineIndonesian        Cuisine = "Indonesian"
	CuisineInuit             Cuisine = "Inuit"
	CuisineIrish             Cuisine = "Irish"
	CuisineItalian           Cuisine = "Italian"
	CuisineItalianAmerican   Cuisine = "Italian-American"
	CuisineJamaican          Cuisine = "Jamaican"
	CuisineJapanese          Cuisine = "Japanese"
	CuisineJewish            Cuisine = "Jewish"
	CuisineKarnataka         Cuisine = "Karnataka"
	CuisineKazakh            Cuisine = "Kazakh"
	CuisineKenyan            Cuisine = "Kenyan"
	CuisineKeralite          Cuisine = "Keralite"
	CuisineKorean            Cuisine = "Korean"
	CuisineKurdish           Cuisine = "Kurdish"
	CuisineLaotian           Cuisine = "Laotian"
	CuisineLatvian           Cuisine = "Latvian"
	CuisineLebanese          Cuisine = "Lebanese"
	CuisineLibyan            Cuisine = "Libyan"
	CuisineLithuanian        Cuisine = "Lithuanian"
	CuisineLouisianaCreole   Cuisine = "Louisiana Creole"
	CuisineMaharashtrian     Cuisine = "Maharashtrian"
	CuisineMalay             Cuisine = "Malay"
	CuisineMalaysianChinese  Cuisine = "Malaysian Chinese"
	CuisineMalaysianIndian   Cuisine = "Malaysian Indian"
	CuisineMangalorean       Cuisine = "Mangalorean"
	CuisineMediterranean     Cuisine = "Mediterranean"
	CuisineMennonite         Cuisine = "Mennonite"
	CuisineMexican           Cuisine = "Mexican"
	CuisineMordovian         Cuisine = "Mordovian"
	CuisineMormon            Cuisine = "Mormon"
	CuisineMughal            Cuisine = "Mughal"
	CuisineNativeAmerican    Cuisine = "Native American"
	CuisineNepalese          Cuisine = "Nepalese"
	CuisineNewMexican        Cuisine = "New Mexican"
	CuisineNigerian          Cuisine = "Nigerian"
	CuisineOdia              Cuisine = "Odia"
	CuisineOther             Cuisine = "Other"
	CuisinePakistani         Cuisine = "Pakistani"
	CuisineParsi             Cuisine = "Parsi"
	CuisinePashtun           Cuisine = "Pashtun"
	CuisinePennsylvaniaDutch Cuisine = "Pennsylvania Dutch"
	CuisinePeranakan         Cuisine = "Peranakan"
	CuisinePersian           Cuisine = "Persian"
	CuisinePeruvian          Cuisine = "Peruvian"
	CuisinePolish            Cuisine = "Polish"
	CuisinePortuguese        Cuisine = "Portuguese"
	CuisinePunjabi           Cuisine = "Punjabi"
	CuisineQuebecois         Cuisine = "Québécois"
	CuisineRajasthani        Cuisine = "Rajasthani"
	CuisineRomanian          Cuisine = "Romanian"
	CuisineRussian           Cuisine = "Russian"
	CuisineSalvadorian       Cuisine = "Salvadorian"
	CuisineSami              Cuisine = "Sami"
	CuisineScottish          Cuisine = "Scottish"
	CuisineSerbian           Cuisine = "Serbian"
	CuisineSindhi            Cuisine = "Sindhi"
	CuisineSingaporean       Cuisine = "Singaporean"
	CuisineSlovak            Cuisine = "Slovak"
	CuisineSlovenian         Cuisine = "Slovenian"
	CuisineSomali            Cuisine = "Somali"
	CuisineSouthIndian       Cuisine = "South Indian"
	CuisineSoviet            Cuisine = "Soviet"
	CuisineSpanish           Cuisine = "Spanish"
	CuisineSriLankan         Cuisine = "Sri Lankan"
	CuisineSwedish           Cuisine = "Swedish"
	CuisineTahitian          Cuisine = "Tahitian"
	CuisineTaiwanese         Cuisine = "Taiwanese"
	CuisineTamil             Cuisine = "Tamil"
	CuisineTatar             Cuisine = "Tatar"
	CuisineTexan             Cuisine = "Texan"
	CuisineThai              Cuisine = "Thai"
	CuisineTibetan           Cuisine = "Tibetan"
	CuisineTurkish           Cuisine = "Turkish"
	CuisineUdupi             Cuisine = "Udupi"
	CuisineUkrainian         Cuisine = "Ukrainian"
	CuisineVietnamese        Cuisine = "Vietnamese"
	CuisineWelsh             Cuisine = "Welsh"
	CuisineYamal             Cuisine = "Yamal"
	CuisineZambian           Cuisine = "Zambian"
)

var cuisines = []Cuisine{
	CuisineAfghan,
	CuisineAinu,
	CuisineAlbanian,
	CuisineAlgerian,
	CuisineAmerican,
	CuisineAndhra,
	CuisineAngloIndian,
	CuisineArab,
	CuisineArgentine,
	CuisineArmenian,
	CuisineAssyrian,
	CuisineAwadhi,
	CuisineAzerbaijani,
	CuisineBalochi,
	CuisineBangladeshi,
	CuisineBelarusian,
	CuisineBelgian,
	CuisineBengali,
	CuisineBerber,
	CuisineBrazilian,
	CuisineBritish,
	CuisineBuddhist,
	CuisineBulgarian,
	CuisineCajun,
	CuisineCanadian,
	CuisineCantonese,
	CuisineCaribbean,
	CuisineChechen,
	CuisineChinese,
	CuisineChineseIslamic,
	CuisineCircassian,
	CuisineCrimeanTatar,
	CuisineCuban,
	CuisineCypriot,
	CuisineCzech,
	CuisineDanish,
	CuisineEgyptian,
	CuisineEnglish,
	CuisineEritrean,
	CuisineEstonian,
	CuisineEthiopian,
	CuisineFilipino,
	CuisineFrench,
	CuisineGeorgian,
	CuisineGerman,
	CuisineGoan,
	CuisineGoanCatholic,
	CuisineGreek,
	CuisineGujarati,
	CuisineHaitian,
	CuisineHawaiian,
	CuisineHyderabad,
	CuisineIndian,
	CuisineIndianChinese,
	CuisineIndianSingaporean,
	CuisineIndonesian,
	CuisineInuit,
	CuisineIrish,
	CuisineItalian,
	CuisineItalianAmerican,
	CuisineJamaican,
	CuisineJapanese,
	CuisineJewish,
	CuisineKarnataka,
	CuisineKazakh,
	CuisineKenyan,
	CuisineKeralite,
	CuisineKorean,
	CuisineKurdish,
	CuisineLaotian,
	CuisineLatvian,
	CuisineLebanese,
	CuisineLibyan,
	CuisineLithuanian,
	CuisineLouisianaCreole,
	CuisineMaharashtrian,
	CuisineMalay,
	CuisineMalaysianChinese,
	CuisineMalaysianIndian,
	CuisineMangalorean,
	CuisineMediterranean,
	CuisineMennonite,
	CuisineMexican,
	CuisineMordovian,
	CuisineMormon,
	CuisineMughal,
	CuisineNativeAmerican,
	CuisineNepalese,
	CuisineNewMexican,
	CuisineNigerian,
	CuisineOdia,
	CuisineOther,
	CuisinePakistani,
	CuisineParsi,
	CuisinePashtun,
	CuisinePennsylvaniaDutch,
	CuisinePeranakan,
	CuisinePersian,
	CuisinePeruvian,
	CuisinePolish,
	CuisinePortuguese,
	CuisinePunjabi,
	CuisineQuebecois,
	CuisineRajasthani,
	CuisineRomanian,
	CuisineRussian,
	CuisineSalvadorian,
	CuisineSami,
	CuisineScottish,
	CuisineSerbian,
	CuisineSindhi,
	CuisineSingaporean,
	CuisineSlovak,
	CuisineSlovenian,
	CuisineSomali,
	CuisineSouthIndian,
	CuisineSoviet,
	CuisineSpanish,
	CuisineSriLankan,
	CuisineSwedish,
	CuisineTahitian,
	CuisineTaiwanese,
	CuisineTamil,
	CuisineTatar,
	CuisineTexan,
	CuisineThai,
	CuisineTibetan,
	CuisineTurkish,
	CuisineUdupi,
	CuisineUkrainian,
	CuisineVietnamese,
	CuisineWelsh,
	CuisineYamal,
	CuisineZambian,
}
