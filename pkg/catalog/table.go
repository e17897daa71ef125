package catalog

// table holds the canonical English labels in code order. Labels are the
// translation keys, so they must not change once published.
var table = [...]Entry{
	{Code: "AD", Label: "Andorra"},
	{Code: "AE", Label: "United Arab Emirates"},
	{Code: "AF", Label: "Afghanistan"},
	{Code: "AG", Label: "Antigua and Barbuda"},
	{Code: "AI", Label: "Anguilla"},
	{Code: "AL", Label: "Albania"},
	{Code: "AM", Label: "Armenia"},
	{Code: "AO", Label: "Angola"},
	{Code: "AP", Label: "Asia/Pacific Region"},
	{Code: "AQ", Label: "Antarctica"},
	{Code: "AR", Label: "Argentina"},
	{Code: "AS", Label: "American Samoa"},
	{Code: "AT", Label: "Austria"},
	{Code: "AU", Label: "Australia"},
	{Code: "AW", Label: "Aruba"},
	{Code: "AX", Label: "Aland Islands"},
	{Code: "AZ", Label: "Azerbaijan"},
	{Code: "BA", Label: "Bosnia and Herzegovina"},
	{Code: "BB", Label: "Barbados"},
	{Code: "BD", Label: "Bangladesh"},
	{Code: "BE", Label: "Belgium"},
	{Code: "BF", Label: "Burkina Faso"},
	{Code: "BG", Label: "Bulgaria"},
	{Code: "BH", Label: "Bahrain"},
	{Code: "BI", Label: "Burundi"},
	{Code: "BJ", Label: "Benin"},
	{Code: "BL", Label: "Saint Bartelemey"},
	{Code: "BM", Label: "Bermuda"},
	{Code: "BN", Label: "Brunei Darussalam"},
	{Code: "BO", Label: "Bolivia"},
	{Code: "BQ", Label: "Bonaire, Saint Eustatius and Saba"},
	{Code: "BR", Label: "Brazil"},
	{Code: "BS", Label: "Bahamas"},
	{Code: "BT", Label: "Bhutan"},
	{Code: "BV", Label: "Bouvet Island"},
	{Code: "BW", Label: "Botswana"},
	{Code: "BY", Label: "Belarus"},
	{Code: "BZ", Label: "Belize"},
	{Code: "CA", Label: "Canada"},
	{Code: "CC", Label: "Cocos (Keeling) Islands"},
	{Code: "CD", Label: "Congo, The Democratic Republic of the"},
	{Code: "CF", Label: "Central African Republic"},
	{Code: "CG", Label: "Congo"},
	{Code: "CH", Label: "Switzerland"},
	{Code: "CI", Label: "Cote d'Ivoire"},
	{Code: "CK", Label: "Cook Islands"},
	{Code: "CL", Label: "Chile"},
	{Code: "CM", Label: "Cameroon"},
	{Code: "CN", Label: "China"},
	{Code: "CO", Label: "Colombia"},
	{Code: "CR", Label: "Costa Rica"},
	{Code: "CU", Label: "Cuba"},
	{Code: "CV", Label: "Cape Verde"},
	{Code: "CW", Label: "Curacao"},
	{Code: "CX", Label: "Christmas Island"},
	{Code: "CY", Label: "Cyprus"},
	{Code: "CZ", Label: "Czech Republic"},
	{Code: "DE", Label: "Germany"},
	{Code: "DJ", Label: "Djibouti"},
	{Code: "DK", Label: "Denmark"},
	{Code: "DM", Label: "Dominica"},
	{Code: "DO", Label: "Dominican Republic"},
	{Code: "DZ", Label: "Algeria"},
	{Code: "EC", Label: "Ecuador"},
	{Code: "EE", Label: "Estonia"},
	{Code: "EG", Label: "Egypt"},
	{Code: "EH", Label: "Western Sahara"},
	{Code: "ER", Label: "Eritrea"},
	{Code: "ES", Label: "Spain"},
	{Code: "ET", Label: "Ethiopia"},
	{Code: "EU", Label: "Europe"},
	{Code: "FI", Label: "Finland"},
	{Code: "FJ", Label: "Fiji"},
	{Code: "FK", Label: "Falkland Islands (Malvinas)"},
	{Code: "FM", Label: "Micronesia, Federated States of"},
	{Code: "FO", Label: "Faroe Islands"},
	{Code: "FR", Label: "France"},
	{Code: "GA", Label: "Gabon"},
	{Code: "GB", Label: "United Kingdom"},
	{Code: "GD", Label: "Grenada"},
	{Code: "GE", Label: "Georgia"},
	{Code: "GF", Label: "French Guiana"},
	{Code: "GG", Label: "Guernsey"},
	{Code: "GH", Label: "Ghana"},
	{Code: "GI", Label: "Gibraltar"},
	{Code: "GL", Label: "Greenland"},
	{Code: "GM", Label: "Gambia"},
	{Code: "GN", Label: "Guinea"},
	{Code: "GP", Label: "Guadeloupe"},
	{Code: "GQ", Label: "Equatorial Guinea"},
	{Code: "GR", Label: "Greece"},
	{Code: "GS", Label: "South Georgia and the South Sandwich Islands"},
	{Code: "GT", Label: "Guatemala"},
	{Code: "GU", Label: "Guam"},
	{Code: "GW", Label: "Guinea-Bissau"},
	{Code: "GY", Label: "Guyana"},
	{Code: "HK", Label: "Hong Kong"},
	{Code: "HM", Label: "Heard Island and McDonald Islands"},
	{Code: "HN", Label: "Honduras"},
	{Code: "HR", Label: "Croatia"},
	{Code: "HT", Label: "Haiti"},
	{Code: "HU", Label: "Hungary"},
	{Code: "ID", Label: "Indonesia"},
	{Code: "IE", Label: "Ireland"},
	{Code: "IL", Label: "Israel"},
	{Code: "IM", Label: "Isle of Man"},
	{Code: "IN", Label: "India"},
	{Code: "IO", Label: "British Indian Ocean Territory"},
	{Code: "IQ", Label: "Iraq"},
	{Code: "IR", Label: "Iran, Islamic Republic of"},
	{Code: "IS", Label: "Iceland"},
	{Code: "IT", Label: "Italy"},
	{Code: "JE", Label: "Jersey"},
	{Code: "JM", Label: "Jamaica"},
	{Code: "JO", Label: "Jordan"},
	{Code: "JP", Label: "Japan"},
	{Code: "KE", Label: "Kenya"},
	{Code: "KG", Label: "Kyrgyzstan"},
	{Code: "KH", Label: "Cambodia"},
	{Code: "KI", Label: "Kiribati"},
	{Code: "KM", Label: "Comoros"},
	{Code: "KN", Label: "Saint Kitts and Nevis"},
	{Code: "KP", Label: "Korea, Democratic People's Republic of"},
	{Code: "KR", Label: "Korea, Republic of"},
	{Code: "KW", Label: "Kuwait"},
	{Code: "KY", Label: "Cayman Islands"},
	{Code: "KZ", Label: "Kazakhstan"},
	{Code: "LA", Label: "Lao People's Democratic Republic"},
	{Code: "LB", Label: "Lebanon"},
	{Code: "LC", Label: "Saint Lucia"},
	{Code: "LI", Label: "Liechtenstein"},
	{Code: "LK", Label: "Sri Lanka"},
	{Code: "LR", Label: "Liberia"},
	{Code: "LS", Label: "Lesotho"},
	{Code: "LT", Label: "Lithuania"},
	{Code: "LU", Label: "Luxembourg"},
	{Code: "LV", Label: "Latvia"},
	{Code: "LY", Label: "Libyan Arab Jamahiriya"},
	{Code: "MA", Label: "Morocco"},
	{Code: "MC", Label: "Monaco"},
	{Code: "MD", Label: "Moldova, Republic of"},
	{Code: "ME", Label: "Montenegro"},
	{Code: "MF", Label: "Saint Martin"},
	{Code: "MG", Label: "Madagascar"},
	{Code: "MH", Label: "Marshall Islands"},
	{Code: "MK", Label: "Macedonia"},
	{Code: "ML", Label: "Mali"},
	{Code: "MM", Label: "Myanmar"},
	{Code: "MN", Label: "Mongolia"},
	{Code: "MO", Label: "Macao"},
	{Code: "MP", Label: "Northern Mariana Islands"},
	{Code: "MQ", Label: "Martinique"},
	{Code: "MR", Label: "Mauritania"},
	{Code: "MS", Label: "Montserrat"},
	{Code: "MT", Label: "Malta"},
	{Code: "MU", Label: "Mauritius"},
	{Code: "MV", Label: "Maldives"},
	{Code: "MW", Label: "Malawi"},
	{Code: "MX", Label: "Mexico"},
	{Code: "MY", Label: "Malaysia"},
	{Code: "MZ", Label: "Mozambique"},
	{Code: "NA", Label: "Namibia"},
	{Code: "NC", Label: "New Caledonia"},
	{Code: "NE", Label: "Niger"},
	{Code: "NF", Label: "Norfolk Island"},
	{Code: "NG", Label: "Nigeria"},
	{Code: "NI", Label: "Nicaragua"},
	{Code: "NL", Label: "Netherlands"},
	{Code: "NO", Label: "Norway"},
	{Code: "NP", Label: "Nepal"},
	{Code: "NR", Label: "Nauru"},
	{Code: "NU", Label: "Niue"},
	{Code: "NZ", Label: "New Zealand"},
	{Code: "OM", Label: "Oman"},
	{Code: "PA", Label: "Panama"},
	{Code: "PE", Label: "Peru"},
	{Code: "PF", Label: "French Polynesia"},
	{Code: "PG", Label: "Papua New Guinea"},
	{Code: "PH", Label: "Philippines"},
	{Code: "PK", Label: "Pakistan"},
	{Code: "PL", Label: "Poland"},
	{Code: "PM", Label: "Saint Pierre and Miquelon"},
	{Code: "PN", Label: "Pitcairn"},
	{Code: "PR", Label: "Puerto Rico"},
	{Code: "PS", Label: "Palestinian Territory"},
	{Code: "PT", Label: "Portugal"},
	{Code: "PW", Label: "Palau"},
	{Code: "PY", Label: "Paraguay"},
	{Code: "QA", Label: "Qatar"},
	{Code: "RE", Label: "Reunion"},
	{Code: "RO", Label: "Romania"},
	{Code: "RS", Label: "Serbia"},
	{Code: "RU", Label: "Russian Federation"},
	{Code: "RW", Label: "Rwanda"},
	{Code: "SA", Label: "Saudi Arabia"},
	{Code: "SB", Label: "Solomon Islands"},
	{Code: "SC", Label: "Seychelles"},
	{Code: "SD", Label: "Sudan"},
	{Code: "SE", Label: "Sweden"},
	{Code: "SG", Label: "Singapore"},
	{Code: "SH", Label: "Saint Helena"},
	{Code: "SI", Label: "Slovenia"},
	{Code: "SJ", Label: "Svalbard and Jan Mayen"},
	{Code: "SK", Label: "Slovakia"},
	{Code: "SL", Label: "Sierra Leone"},
	{Code: "SM", Label: "San Marino"},
	{Code: "SN", Label: "Senegal"},
	{Code: "SO", Label: "Somalia"},
	{Code: "SR", Label: "Suriname"},
	{Code: "SS", Label: "South Sudan"},
	{Code: "ST", Label: "Sao Tome and Principe"},
	{Code: "SV", Label: "El Salvador"},
	{Code: "SX", Label: "Sint Maarten"},
	{Code: "SY", Label: "Syrian Arab Republic"},
	{Code: "SZ", Label: "Swaziland"},
	{Code: "TC", Label: "Turks and Caicos Islands"},
	{Code: "TD", Label: "Chad"},
	{Code: "TF", Label: "French Southern Territories"},
	{Code: "TG", Label: "Togo"},
	{Code: "TH", Label: "Thailand"},
	{Code: "TJ", Label: "Tajikistan"},
	{Code: "TK", Label: "Tokelau"},
	{Code: "TL", Label: "Timor-Leste"},
	{Code: "TM", Label: "Turkmenistan"},
	{Code: "TN", Label: "Tunisia"},
	{Code: "TO", Label: "Tonga"},
	{Code: "TR", Label: "Turkey"},
	{Code: "TT", Label: "Trinidad and Tobago"},
	{Code: "TV", Label: "Tuvalu"},
	{Code: "TW", Label: "Taiwan"},
	{Code: "TZ", Label: "Tanzania, United Republic of"},
	{Code: "UA", Label: "Ukraine"},
	{Code: "UG", Label: "Uganda"},
	{Code: "UM", Label: "United States Minor Outlying Islands"},
	{Code: "US", Label: "United States"},
	{Code: "UY", Label: "Uruguay"},
	{Code: "UZ", Label: "Uzbekistan"},
	{Code: "VA", Label: "Holy See (Vatican City State)"},
	{Code: "VC", Label: "Saint Vincent and the Grenadines"},
	{Code: "VE", Label: "Venezuela"},
	{Code: "VG", Label: "Virgin Islands, British"},
	{Code: "VI", Label: "Virgin Islands, U.S."},
	{Code: "VN", Label: "Vietnam"},
	{Code: "VU", Label: "Vanuatu"},
	{Code: "WF", Label: "Wallis and Futuna"},
	{Code: "WS", Label: "Samoa"},
	{Code: "YE", Label: "Yemen"},
	{Code: "YT", Label: "Mayotte"},
	{Code: "ZA", Label: "South Africa"},
	{Code: "ZM", Label: "Zambia"},
	{Code: "ZW", Label: "Zimbabwe"},
}
