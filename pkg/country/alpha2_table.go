package country

// alpha2Table lists every recognized country with its ISO 3166-1 alpha-2 code.
// Declaration order is shared with alpha3Table and must not diverge.
var alpha2Table = []codeEntry[Alpha2Code]{
	{name: "AFGHANISTAN", code: "AF"},
	{name: "ALAND_ISLANDS", code: "AX"},
	{name: "ALBANIA", code: "AL"},
	{name: "ALGERIA", code: "DZ"},
	{name: "AMERICAN_SAMOA", code: "AS"},
	{name: "ANDORRA", code: "AD"},
	{name: "ANGOLA", code: "AO"},
	{name: "ANGUILLA", code: "AI"},
	{name: "ANTARCTICA", code: "AQ"},
	{name: "ANTIGUA_AND_BARBUDA", code: "AG"},
	{name: "ARGENTINA", code: "AR"},
	{name: "ARMENIA", code: "AM"},
	{name: "ARUBA", code: "AW"},
	{name: "AUSTRALIA", code: "AU"},
	{name: "AUSTRIA", code: "AT"},
	{name: "AZERBAIJAN", code: "AZ"},
	{name: "BAHAMAS", code: "BS"},
	{name: "BAHRAIN", code: "BH"},
	{name: "BANGLADESH", code: "BD"},
	{name: "BARBADOS", code: "BB"},
	{name: "BELARUS", code: "BY"},
	{name: "BELGIUM", code: "BE"},
	{name: "BELIZE", code: "BZ"},
	{name: "BENIN", code: "BJ"},
	{name: "BERMUDA", code: "BM"},
	{name: "BHUTAN", code: "BT"},
	{name: "BOLIVIA", code: "BO"},
	{name: "BOSNIA_AND_HERZEGOVINA", code: "BA"},
	{name: "BOTSWANA", code: "BW"},
	{name: "BOUVET_ISLAND", code: "BV"},
	{name: "BRAZIL", code: "BR"},
	{name: "BRITISH_INDIAN_OCEAN_TERRITORY", code: "IO"},
	{name: "BRUNEI_DARUSSALAM", code: "BN"},
	{name: "BULGARIA", code: "BG"},
	{name: "BURKINA_FASO", code: "BF"},
	{name: "BURUNDI", code: "BI"},
	{name: "CAPE_VERDE", code: "CV"},
	{name: "CAMBODIA", code: "KH"},
	{name: "CAMEROON", code: "CM"},
	{name: "CANADA", code: "CA"},
	{name: "CAYMAN_ISLANDS", code: "KY"},
	{name: "CENTRAL_AFRICAN_REPUBLIC", code: "CF"},
	{name: "CHAD", code: "TD"},
	{name: "CHILE", code: "CL"},
	{name: "CHINA", code: "CN"},
	{name: "CHRISTMAS_ISLAND", code: "CX"},
	{name: "COCOS_KEELING_ISLANDS", code: "CC"},
	{name: "COLOMBIA", code: "CO"},
	{name: "COMOROS", code: "KM"},
	{name: "CONGO", code: "CG"},
	{name: "COOK_ISLANDS", code: "CK"},
	{name: "COSTA_RICA", code: "CR"},
	{name: "COTE_D_IVOIRE", code: "CI"},
	{name: "CROATIA", code: "HR"},
	{name: "CUBA", code: "CU"},
	{name: "CYPRUS", code: "CY"},
	{name: "CZECH_REPUBLIC", code: "CZ"},
	{name: "DENMARK", code: "DK"},
	{name: "DJIBOUTI", code: "DJ"},
	{name: "DOMINICA", code: "DM"},
	{name: "DOMINICAN_REPUBLIC", code: "DO"},
	{name: "EAST_TIMOR", code: "TP"},
	{name: "ECUADOR", code: "EC"},
	{name: "EGYPT", code: "EG"},
	{name: "EL_SALVADOR", code: "SV"},
	{name: "EQUATORIAL_GUINEA", code: "GQ"},
	{name: "ERITREA", code: "ER"},
	{name: "ESTONIA", code: "EE"},
	{name: "ETHIOPIA", code: "ET"},
	{name: "MALVINAS", code: "FK"},
	{name: "FAROE_ISLANDS", code: "FO"},
	{name: "FIJI", code: "FJ"},
	{name: "FINLAND", code: "FI"},
	{name: "FRANCE", code: "FR"},
	{name: "FRANCE_METROPOLITAN", code: "FX"},
	{name: "FRENCH_GUIANA", code: "GF"},
	{name: "FRENCH_POLYNESIA", code: "PF"},
	{name: "FRENCH_SOUTHERN_TERRITORIES", code: "TF"},
	{name: "GABON", code: "GA"},
	{name: "GAMBIA", code: "GM"},
	{name: "GEORGIA", code: "GE"},
	{name: "GERMANY", code: "DE"},
	{name: "GHANA", code: "GH"},
	{name: "GIBRALTAR", code: "GI"},
	{name: "GREECE", code: "GR"},
	{name: "GREENLAND", code: "GL"},
	{name: "GRENADA", code: "GD"},
	{name: "GUADELOUPE", code: "GP"},
	{name: "GUAM", code: "GU"},
	{name: "GUATEMALA", code: "GT"},
	{name: "GUINEA", code: "GN"},
	{name: "GUINEA_BISSAU", code: "GW"},
	{name: "GUYANA", code: "GY"},
	{name: "HAITI", code: "HT"},
	{name: "HEARD_ISLAND_AND_MCDONALD_ISLANDS", code: "HM"},
	{name: "HONDURAS", code: "HN"},
	{name: "HONG_KONG", code: "HK"},
	{name: "HUNGARY", code: "HU"},
	{name: "ICELAND", code: "IS"},
	{name: "INDIA", code: "IN"},
	{name: "INDONESIA", code: "ID"},
	{name: "IRAN", code: "IR"},
	{name: "IRAQ", code: "IQ"},
	{name: "IRELAND", code: "IE"},
	{name: "ISRAEL", code: "IL"},
	{name: "ITALY", code: "IT"},
	{name: "JAMAICA", code: "JM"},
	{name: "JAPAN", code: "JP"},
	{name: "JORDAN", code: "JO"},
	{name: "KAZAKHSTAN", code: "KZ"},
	{name: "KENYA", code: "KE"},
	{name: "KIRIBATI", code: "KI"},
	{name: "NORTH_KOREA", code: "KP"},
	{name: "SOUTH_KOREA", code: "KR"},
	{name: "KUWAIT", code: "KW"},
	{name: "KYRGYZSTAN", code: "KG"},
	{name: "LAOS", code: "LA"},
	{name: "LATVIA", code: "LV"},
	{name: "LEBANON", code: "LB"},
	{name: "LESOTHO", code: "LS"},
	{name: "LIBERIA", code: "LR"},
	{name: "LIBYAN_ARAB_JAMAHIRIYA", code: "LY"},
	{name: "LIECHTENSTEIN", code: "LI"},
	{name: "LITHUANIA", code: "LT"},
	{name: "LUXEMBOURG", code: "LU"},
	{name: "MACAU", code: "MO"},
	{name: "MACEDONIA", code: "MK"},
	{name: "MADAGASCAR", code: "MG"},
	{name: "MALAWI", code: "MW"},
	{name: "MALAYSIA", code: "MY"},
	{name: "MALDIVES", code: "MV"},
	{name: "MALI", code: "ML"},
	{name: "MALTA", code: "MT"},
	{name: "MARSHALL_ISLANDS", code: "MH"},
	{name: "MARTINIQUE", code: "MQ"},
	{name: "MAURITANIA", code: "MR"},
	{name: "MAURITIUS", code: "MU"},
	{name: "MAYOTTE", code: "YT"},
	{name: "MEXICO", code: "MX"},
	{name: "MICRONESIA", code: "FM"},
	{name: "MOLDOVA", code: "MD"},
	{name: "MONACO", code: "MC"},
	{name: "MONGOLIA", code: "MN"},
	{name: "MONTSERRAT", code: "MS"},
	{name: "MOROCCO", code: "MA"},
	{name: "MOZAMBIQUE", code: "MZ"},
	{name: "MYANMAR", code: "MM"},
	{name: "NAMIBIA", code: "NA"},
	{name: "NAURU", code: "NR"},
	{name: "NEPAL", code: "NP"},
	{name: "NETHERLANDS", code: "NL"},
	{name: "NETHERLANDS_ANTILLES", code: "AN"},
	{name: "NEW_CALEDONIA", code: "NC"},
	{name: "NEW_ZEALAND", code: "NZ"},
	{name: "NICARAGUA", code: "NI"},
	{name: "NIGER", code: "NE"},
	{name: "NIGERIA", code: "NG"},
	{name: "NIUE", code: "NU"},
	{name: "NORFOLK_ISLAND", code: "NF"},
	{name: "NORTHERN_MARIANA_ISLANDS", code: "MP"},
	{name: "NORWAY", code: "NO"},
	{name: "OMAN", code: "OM"},
	{name: "PAKISTAN", code: "PK"},
	{name: "PALAU", code: "PW"},
	{name: "PANAMA", code: "PA"},
	{name: "PAPUA_NEW_GUINEA", code: "PG"},
	{name: "PARAGUAY", code: "PY"},
	{name: "PERU", code: "PE"},
	{name: "PHILIPPINES", code: "PH"},
	{name: "PITCAIRN", code: "PN"},
	{name: "POLAND", code: "PL"},
	{name: "PORTUGAL", code: "PT"},
	{name: "PUERTO_RICO", code: "PR"},
	{name: "QATAR", code: "QA"},
	{name: "REUNION", code: "RE"},
	{name: "ROMANIA", code: "RO"},
	{name: "RUSSIA", code: "RU"},
	{name: "RWANDA", code: "RW"},
	{name: "SAINT_KITTS_AND_NEVIS", code: "KN"},
	{name: "SAINT_LUCIA", code: "LC"},
	{name: "SAINT_VINCENT_AND_THE_GRENADINES", code: "VC"},
	{name: "SAMOA", code: "WS"},
	{name: "SAN_MARINO", code: "SM"},
	{name: "SAO_TOME_AND_PRINCIPE", code: "ST"},
	{name: "SAUDI_ARABIA", code: "SA"},
	{name: "SENEGAL", code: "SN"},
	{name: "SEYCHELLES", code: "SC"},
	{name: "SIERRA_LEONE", code: "SL"},
	{name: "SINGAPORE", code: "SG"},
	{name: "SLOVAKIA", code: "SK"},
	{name: "SLOVENIA", code: "SI"},
	{name: "SOLOMON_ISLANDS", code: "SB"},
	{name: "SOMALIA", code: "SO"},
	{name: "SOUTH_AFRICA", code: "ZA"},
	{name: "SOUTH_GEORGIA_AND_THE_SOUTH_SANDWICH_ISLANDS", code: "GS"},
	{name: "SPAIN", code: "ES"},
	{name: "SRI_LANKA", code: "LK"},
	{name: "ST_HELENA", code: "SH"},
	{name: "ST_PIERRE_AND_MIQUELON", code: "PM"},
	{name: "SUDAN", code: "SD"},
	{name: "SURINAME", code: "SR"},
	{name: "SVALBARD_AND_JAN_MAYEN_ISLANDS", code: "SJ"},
	{name: "SWAZILAND", code: "SZ"},
	{name: "SWEDEN", code: "SE"},
	{name: "SWITZERLAND", code: "CH"},
	{name: "SYRIAN_ARAB_REPUBLIC", code: "SY"},
	{name: "TAIWAN", code: "TW"},
	{name: "TAJIKISTAN", code: "TJ"},
	{name: "TANZANIA", code: "TZ"},
	{name: "THAILAND", code: "TH"},
	{name: "TOGO", code: "TG"},
	{name: "TOKELAU", code: "TK"},
	{name: "TONGA", code: "TO"},
	{name: "TRINIDAD_AND_TOBAGO", code: "TT"},
	{name: "TUNISIA", code: "TN"},
	{name: "TURKEY", code: "TR"},
	{name: "TURKMENISTAN", code: "TM"},
	{name: "TURKS_AND_CAICOS_ISLANDS", code: "TC"},
	{name: "TUVALU", code: "TV"},
	{name: "UGANDA", code: "UG"},
	{name: "UKRAINE", code: "UA"},
	{name: "UNITED_ARAB_EMIRATES", code: "AE"},
	{name: "UNITED_KINGDOM_OF_GREAT_BRITAIN_AND_NORTHERN_IRELAND", code: "GB"},
	{name: "UNITED_STATES_OF_AMERICA", code: "US"},
	{name: "UNITED_STATES_MINOR_OUTLYING_ISLANDS", code: "UM"},
	{name: "URUGUAY", code: "UY"},
	{name: "UZBEKISTAN", code: "UZ"},
	{name: "VANUATU", code: "VU"},
	{name: "VATICAN_CITY_STATE", code: "VA"},
	{name: "VENEZUELA", code: "VE"},
	{name: "VIETNAM", code: "VN"},
	{name: "VIRGIN_ISLANDS_BRITISH", code: "VG"},
	{name: "VIRGIN_ISLANDS_US", code: "VI"},
	{name: "WALLIS_AND_FUTUNA_ISLANDS", code: "WF"},
	{name: "WESTERN_SAHARA", code: "EH"},
	{name: "YEMEN", code: "YE"},
	{name: "YUGOSLAVIA", code: "YU"},
	{name: "ZAIRE", code: "ZR"},
	{name: "ZAMBIA", code: "ZM"},
	{name: "ZIMBABWE", code: "ZW"},
	{name: "PALESTINE", code: "PS"},
}
