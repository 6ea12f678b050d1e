package style

// Unknown is the key of the icon used for anything missing from the table.
const Unknown = "unknown"

// icons maps a Google My Maps icon number (from styleUrl "#icon-1739-0288D1")
// to the OsmAnd icon shown for it. The icon names come from an OsmAnd
// favourites.gpx, e.g. <icon>special_trekking</icon>.
var icons = map[string]Icon{
	Unknown: {"special_symbol_question_mark", UseInline, Octagon},
	"1765":  {"tourism_camp_site", UseInline, Circle},     // campsite
	"1525":  {"leisure_marina", Fixed("a71de1"), Octagon}, // river access
	"1739":  {"special_number_0", UseInline, Circle},      // mileage marker
	"1596":  {"special_trekking", UseInline, Circle},      // hiking trailhead
	"1369":  {"special_trekking", UseInline, Circle},      // hiking trailhead, old style
	"1371":  {"special_trekking", UseInline, Circle},      // hiking trailhead, old style
	"1723":  {"tourism_viewpoint", UseInline, Octagon},    // rapid
	"1602":  {"tourism_hotel", UseInline, Circle},         // hotel, lodge
	"1528":  {"bridge_structure_suspension", Fixed("10c0f0"), Circle},
	"1577":  {"restaurants", UseInline, Circle},
	"1085":  {"restaurants", UseInline, Circle}, // old style
	"1650":  {"tourism_picnic_site", Fixed("eecc22"), Circle},
	"1644":  {"amenity_parking", UseInline, Circle},
	"1578":  {"shop_supermarket", UseInline, Circle},
	"1685":  {"shop_supermarket", UseInline, Circle},
	"1023":  {"shop_supermarket", UseInline, Circle}, // old style
	"1504":  {"air_transport", Fixed("10c0f0"), Circle},
	"1581":  {"fuel", UseInline, Circle},
	"1733":  {"amenity_toilets", Fixed("10c0f0"), Circle},
	"1624":  {"amenity_doctors", Fixed("d00d0d"), Circle},
	"1608":  {"tourism_information", Fixed("1010a0"), Circle},
	"1203":  {"tourism_information", Fixed("1010a0"), Circle}, // old style "i"
	"1535":  {"special_photo_camera", UseInline, Circle},
	"993":   {"special_photo_camera", UseInline, Circle}, // old style
	"1574":  {"special_flag_start", UseInline, Circle},
	"1899":  {"special_marker", UseInline, Circle},
	"1502":  {"special_star", UseInline, Circle},
	"1501":  {"special_symbol_plus", UseInline, Circle},
	"1500":  {"special_flag_start", UseInline, Circle}, // square in google maps
	"1592":  {"special_heart", UseInline, Circle},
	"1729":  {"tourism_viewpoint", UseInline, Circle},
	"503":   {"special_marker", UseInline, Circle}, // old school map point
	"1603":  {"special_house", Fixed("eecc22"), Circle},
	"1879":  {"amenity_biergarten", UseInline, Circle},
	"1541":  {"special_symbol_exclamation_mark", Fixed("ff0000"), Octagon}, // danger "!"
	"1898":  {"special_symbol_exclamation_mark", UseInline, Octagon},       // danger "X"
	"1564":  {"amenity_fire_station", Fixed("ff0000"), Octagon},
	"1710":  {"special_arrow_up_and_down", Fixed("10c0f0"), Circle}, // river gauge
	"1655":  {"amenity_police", Fixed("1010a0"), Circle},
	"1657":  {"amenity_police", Fixed("1010a0"), Circle},
	"1720":  {"wood", Fixed("eecc22"), Circle}, // park
	"1701":  {"sport_swimming", Fixed("eecc22"), Circle},
	"1395":  {"sport_swimming", Fixed("eecc22"), Circle}, // old style
	"1811":  {"special_sun", Fixed("eecc22"), Circle},    // hot spring
	"1716":  {"route_railway_ref", UseInline, Circle},
	"1532":  {"route_bus_ref", UseInline, Circle},
	"1626":  {"route_monorail_ref", UseInline, Circle},
	"1534":  {"amenity_cafe", UseInline, Circle},
	"1607":  {"amenity_cafe", UseInline, Circle},
	"1892":  {"waterfall", Fixed("eecc22"), Circle},
	"1634":  {"building_type_pyramid", Fixed("eecc22"), Circle}, // mountain peak
	"1684":  {"shop_department_store", Fixed("10c0f0"), Circle},
	"1095":  {"shop_department_store", Fixed("10c0f0"), Circle}, // old style
	"1517":  {"amenity_bar", UseInline, Circle},
	"979":   {"special_sail_boat", Fixed("a71de1"), Circle}, // passenger ferry
	"1537":  {"special_sail_boat", UseInline, Circle},       // auto ferry
	"1569":  {"special_sail_boat", UseInline, Circle},       // passenger ferry
	"1498":  {"place_town", Fixed("0244D1"), Circle},
	"1521":  {"leisure_beach_resort", Fixed("eecc22"), Circle},
	"1703":  {"amenity_drinking_water", Fixed("00842b"), Circle},
	"1781":  {"sanitary_dump_station", Fixed("10c0f0"), Circle},
	"1798":  {"Winery", UseInline, Circle},
	"1636":  {"Museum", UseInline, Circle},
	"1289":  {"Museum", Fixed("10c0f0"), Circle},
	"1741":  {"special_wagon", UseInline, Circle}, // car rental
	"1538":  {"special_wagon", UseInline, Circle},
	"1590":  {"shop_car_repair", Fixed("10c0f0"), Circle},
	"1659":  {"amenity_post_box", Fixed("10c0f0"), Circle},
	"1512":  {"amenity_atm", Fixed("10c0f0"), Circle},
	"1870":  {"sport_scuba_diving", UseInline, Octagon},
	"1882":  {"reef", UseInline, Octagon}, // starfish
	"1573":  {"reef", UseInline, Octagon}, // fish
	"1709":  {"amenity_cinema", UseInline, Circle},
	"1615":  {"sport_canoe", UseInline, Circle},
	"1598":  {"historic_castle", UseInline, Circle},
	"1670":  {"building_type_church", UseInline, Circle},
	"1877":  {"special_arrow_up_arrow_down", UseInline, Circle}, // stairway
}

// Classify returns the OsmAnd icon for a Google icon number. It never fails:
// unknown numbers get the question mark icon.
func Classify(key string) Icon {
	if icon, ok := icons[key]; ok {
		return icon
	}
	return icons[Unknown]
}
