package country

// alpha3Table lists every recognized country with its ISO 3166-1 alpha-3 code,
// in the same order as alpha2Table.
var alpha3Table = []codeEntry[Alpha3Code]{
	{name: "AFGHANISTAN", code: "AFG"},
	{name: "ALAND_ISLANDS", code: "ALA"},
	{name: "ALBANIA", code: "ALB"},
	{name: "ALGERIA", code: "DZA"},
	{name: "AMERICAN_SAMOA", code: "ASM"},
	{name: "ANDORRA", code: "AND"},
	{name: "ANGOLA", code: "AGO"},
	{name: "ANGUILLA", code: "AIA"},
	{name: "ANTARCTICA", code: "ATA"},
	{name: "ANTIGUA_AND_BARBUDA", code: "ATG"},
	{name: "ARGENTINA", code: "ARG"},
	{name: "ARMENIA", code: "ARM"},
	{name: "ARUBA", code: "ABW"},
	{name: "AUSTRALIA", code: "AUS"},
	{name: "AUSTRIA", code: "AUT"},
	{name: "AZERBAIJAN", code: "AZE"},
	{name: "BAHAMAS", code: "BHS"},
	{name: "BAHRAIN", code: "BHR"},
	{name: "BANGLADESH", code: "BGD"},
	{name: "BARBADOS", code: "BRB"},
	{name: "BELARUS", code: "BLR"},
	{name: "BELGIUM", code: "BEL"},
	{name: "BELIZE", code: "BLZ"},
	{name: "BENIN", code: "BEN"},
	{name: "BERMUDA", code: "BMU"},
	{name: "BHUTAN", code: "BTN"},
	{name: "BOLIVIA", code: "BOL"},
	{name: "BOSNIA_AND_HERZEGOVINA", code: "BIH"},
	{name: "BOTSWANA", code: "BWA"},
	{name: "BOUVET_ISLAND", code: "BVT"},
	{name: "BRAZIL", code: "BRA"},
	{name: "BRITISH_INDIAN_OCEAN_TERRITORY", code: "IOT"},
	{name: "BRUNEI_DARUSSALAM", code: "BRN"},
	{name: "BULGARIA", code: "BGR"},
	{name: "BURKINA_FASO", code: "BFA"},
	{name: "BURUNDI", code: "BDI"},
	{name: "CAPE_VERDE", code: "CPV"},
	{name: "CAMBODIA", code: "KHM"},
	{name: "CAMEROON", code: "CMR"},
	{name: "CANADA", code: "CAN"},
	{name: "CAYMAN_ISLANDS", code: "CYM"},
	{name: "CENTRAL_AFRICAN_REPUBLIC", code: "CAF"},
	{name: "CHAD", code: "TCD"},
	{name: "CHILE", code: "CHL"},
	{name: "CHINA", code: "CHN"},
	{name: "CHRISTMAS_ISLAND", code: "CXR"},
	{name: "COCOS_KEELING_ISLANDS", code: "CCK"},
	{name: "COLOMBIA", code: "COL"},
	{name: "COMOROS", code: "COM"},
	{name: "CONGO", code: "COG"},
	{name: "COOK_ISLANDS", code: "COK"},
	{name: "COSTA_RICA", code: "CRI"},
	{name: "COTE_D_IVOIRE", code: "CIV"},
	{name: "CROATIA", code: "HRV"},
	{name: "CUBA", code: "CUB"},
	{name: "CYPRUS", code: "CYP"},
	{name: "CZECH_REPUBLIC", code: "CZE"},
	{name: "DENMARK", code: "DNK"},
	{name: "DJIBOUTI", code: "DJI"},
	{name: "DOMINICA", code: "DMA"},
	{name: "DOMINICAN_REPUBLIC", code: "DOM"},
	{name: "EAST_TIMOR", code: "TMP"},
	{name: "ECUADOR", code: "ECU"},
	{name: "EGYPT", code: "EGY"},
	{name: "EL_SALVADOR", code: "SLV"},
	{name: "EQUATORIAL_GUINEA", code: "GNQ"},
	{name: "ERITREA", code: "ERI"},
	{name: "ESTONIA", code: "EST"},
	{name: "ETHIOPIA", code: "ETH"},
	{name: "MALVINAS", code: "FLK"},
	{name: "FAROE_ISLANDS", code: "FRO"},
	{name: "FIJI", code: "FJI"},
	{name: "FINLAND", code: "FIN"},
	{name: "FRANCE", code: "FRA"},
	{name: "FRANCE_METROPOLITAN", code: "FXX"},
	{name: "FRENCH_GUIANA", code: "GUF"},
	{name: "FRENCH_POLYNESIA", code: "PYF"},
	{name: "FRENCH_SOUTHERN_TERRITORIES", code: "ATF"},
	{name: "GABON", code: "GAB"},
	{name: "GAMBIA", code: "GMB"},
	{name: "GEORGIA", code: "GEO"},
	{name: "GERMANY", code: "DEU"},
	{name: "GHANA", code: "GHA"},
	{name: "GIBRALTAR", code: "GIB"},
	{name: "GREECE", code: "GRC"},
	{name: "GREENLAND", code: "GRL"},
	{name: "GRENADA", code: "GRD"},
	{name: "GUADELOUPE", code: "GLP"},
	{name: "GUAM", code: "GUM"},
	{name: "GUATEMALA", code: "GTM"},
	{name: "GUINEA", code: "GIN"},
	{name: "GUINEA_BISSAU", code: "GNB"},
	{name: "GUYANA", code: "GUY"},
	{name: "HAITI", code: "HTI"},
	{name: "HEARD_ISLAND_AND_MCDONALD_ISLANDS", code: "HMD"},
	{name: "HONDURAS", code: "HND"},
	{name: "HONG_KONG", code: "HKG"},
	{name: "HUNGARY", code: "HUN"},
	{name: "ICELAND", code: "ISL"},
	{name: "INDIA", code: "IND"},
	{name: "INDONESIA", code: "IDN"},
	{name: "IRAN", code: "IRN"},
	{name: "IRAQ", code: "IRQ"},
	{name: "IRELAND", code: "IRL"},
	{name: "ISRAEL", code: "ISR"},
	{name: "ITALY", code: "ITA"},
	{name: "JAMAICA", code: "JAM"},
	{name: "JAPAN", code: "JPN"},
	{name: "JORDAN", code: "JOR"},
	{name: "KAZAKHSTAN", code: "KAZ"},
	{name: "KENYA", code: "KEN"},
	{name: "KIRIBATI", code: "KIR"},
	{name: "NORTH_KOREA", code: "PRK"},
	{name: "SOUTH_KOREA", code: "KOR"},
	{name: "KUWAIT", code: "KWT"},
	{name: "KYRGYZSTAN", code: "KGZ"},
	{name: "LAOS", code: "LAO"},
	{name: "LATVIA", code: "LVA"},
	{name: "LEBANON", code: "LBN"},
	{name: "LESOTHO", code: "LSO"},
	{name: "LIBERIA", code: "LBR"},
	{name: "LIBYAN_ARAB_JAMAHIRIYA", code: "LBY"},
	{name: "LIECHTENSTEIN", code: "LIE"},
	{name: "LITHUANIA", code: "LTU"},
	{name: "LUXEMBOURG", code: "LUX"},
	{name: "MACAU", code: "MAC"},
	{name: "MACEDONIA", code: "MKD"},
	{name: "MADAGASCAR", code: "MDG"},
	{name: "MALAWI", code: "MWI"},
	{name: "MALAYSIA", code: "MYS"},
	{name: "MALDIVES", code: "MDV"},
	{name: "MALI", code: "MLI"},
	{name: "MALTA", code: "MLT"},
	{name: "MARSHALL_ISLANDS", code: "MHL"},
	{name: "MARTINIQUE", code: "MTQ"},
	{name: "MAURITANIA", code: "MRT"},
	{name: "MAURITIUS", code: "MUS"},
	{name: "MAYOTTE", code: "MYT"},
	{name: "MEXICO", code: "MEX"},
	{name: "MICRONESIA", code: "FSM"},
	{name: "MOLDOVA", code: "MDA"},
	{name: "MONACO", code: "MCO"},
	{name: "MONGOLIA", code: "MNG"},
	{name: "MONTSERRAT", code: "MSR"},
	{name: "MOROCCO", code: "MAR"},
	{name: "MOZAMBIQUE", code: "MOZ"},
	{name: "MYANMAR", code: "MMR"},
	{name: "NAMIBIA", code: "NAM"},
	{name: "NAURU", code: "NRU"},
	{name: "NEPAL", code: "NPL"},
	{name: "NETHERLANDS", code: "NLD"},
	{name: "NETHERLANDS_ANTILLES", code: "ANT"},
	{name: "NEW_CALEDONIA", code: "NCL"},
	{name: "NEW_ZEALAND", code: "NZL"},
	{name: "NICARAGUA", code: "NIC"},
	{name: "NIGER", code: "NER"},
	{name: "NIGERIA", code: "NGA"},
	{name: "NIUE", code: "NIU"},
	{name: "NORFOLK_ISLAND", code: "NFK"},
	{name: "NORTHERN_MARIANA_ISLANDS", code: "MNP"},
	{name: "NORWAY", code: "NOR"},
	{name: "OMAN", code: "OMN"},
	{name: "PAKISTAN", code: "PAK"},
	{name: "PALAU", code: "PLW"},
	{name: "PANAMA", code: "PAN"},
	{name: "PAPUA_NEW_GUINEA", code: "PNG"},
	{name: "PARAGUAY", code: "PRY"},
	{name: "PERU", code: "PER"},
	{name: "PHILIPPINES", code: "PHL"},
	{name: "PITCAIRN", code: "PCN"},
	{name: "POLAND", code: "POL"},
	{name: "PORTUGAL", code: "PRT"},
	{name: "PUERTO_RICO", code: "PRI"},
	{name: "QATAR", code: "QAT"},
	{name: "REUNION", code: "REU"},
	{name: "ROMANIA", code: "ROM"},
	{name: "RUSSIA", code: "RUS"},
	{name: "RWANDA", code: "RWA"},
	{name: "SAINT_KITTS_AND_NEVIS", code: "KNA"},
	{name: "SAINT_LUCIA", code: "LCA"},
	{name: "SAINT_VINCENT_AND_THE_GRENADINES", code: "VCT"},
	{name: "SAMOA", code: "WSM"},
	{name: "SAN_MARINO", code: "SMR"},
	{name: "SAO_TOME_AND_PRINCIPE", code: "STP"},
	{name: "SAUDI_ARABIA", code: "SAU"},
	{name: "SENEGAL", code: "SEN"},
	{name: "SEYCHELLES", code: "SYC"},
	{name: "SIERRA_LEONE", code: "SLE"},
	{name: "SINGAPORE", code: "SGP"},
	{name: "SLOVAKIA", code: "SVK"},
	{name: "SLOVENIA", code: "SVN"},
	{name: "SOLOMON_ISLANDS", code: "SLB"},
	{name: "SOMALIA", code: "SOM"},
	{name: "SOUTH_AFRICA", code: "ZAF"},
	{name: "SOUTH_GEORGIA_AND_THE_SOUTH_SANDWICH_ISLANDS", code: "SGS"},
	{name: "SPAIN", code: "ESP"},
	{name: "SRI_LANKA", code: "LKA"},
	{name: "ST_HELENA", code: "SHN"},
	{name: "ST_PIERRE_AND_MIQUELON", code: "SPM"},
	{name: "SUDAN", code: "SDN"},
	{name: "SURINAME", code: "SUR"},
	{name: "SVALBARD_AND_JAN_MAYEN_ISLANDS", code: "SJM"},
	{name: "SWAZILAND", code: "SWZ"},
	{name: "SWEDEN", code: "SWE"},
	{name: "SWITZERLAND", code: "CHE"},
	{name: "SYRIAN_ARAB_REPUBLIC", code: "SYR"},
	{name: "TAIWAN", code: "TWN"},
	{name: "TAJIKISTAN", code: "TJK"},
	{name: "TANZANIA", code: "TZA"},
	{name: "THAILAND", code: "THA"},
	{name: "TOGO", code: "TGO"},
	{name: "TOKELAU", code: "TKL"},
	{name: "TONGA", code: "TON"},
	{name: "TRINIDAD_AND_TOBAGO", code: "TTO"},
	{name: "TUNISIA", code: "TUN"},
	{name: "TURKEY", code: "TUR"},
	{name: "TURKMENISTAN", code: "TKM"},
	{name: "TURKS_AND_CAICOS_ISLANDS", code: "TCA"},
	{name: "TUVALU", code: "TUV"},
	{name: "UGANDA", code: "UGA"},
	{name: "UKRAINE", code: "UKR"},
	{name: "UNITED_ARAB_EMIRATES", code: "ARE"},
	{name: "UNITED_KINGDOM_OF_GREAT_BRITAIN_AND_NORTHERN_IRELAND", code: "GBR"},
	{name: "UNITED_STATES_OF_AMERICA", code: "USA"},
	{name: "UNITED_STATES_MINOR_OUTLYING_ISLANDS", code: "UMI"},
	{name: "URUGUAY", code: "URY"},
	{name: "UZBEKISTAN", code: "UZB"},
	{name: "VANUATU", code: "VUT"},
	{name: "VATICAN_CITY_STATE", code: "VAT"},
	{name: "VENEZUELA", code: "VEN"},
	{name: "VIETNAM", code: "VNM"},
	{name: "VIRGIN_ISLANDS_BRITISH", code: "VGB"},
	{name: "VIRGIN_ISLANDS_US", code: "VIR"},
	{name: "WALLIS_AND_FUTUNA_ISLANDS", code: "WLF"},
	{name: "WESTERN_SAHARA", code: "ESH"},
	{name: "YEMEN", code: "YEM"},
	{name: "YUGOSLAVIA", code: "YUG"},
	{name: "ZAIRE", code: "ZAR"},
	{name: "ZAMBIA", code: "ZMB"},
	{name: "ZIMBABWE", code: "ZWE"},
	{name: "PALESTINE", code: "PSE"},
}
