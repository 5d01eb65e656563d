package lexicon

// DefaultEntries returns the built-in dictionary of everyday objects, in
// declaration order. Earlier entries take precedence on shared aliases.
func DefaultEntries() []Entry {
	return []Entry{
		// Food and drink
		NewEntry("μήλο", "apple", "apples"),
		NewEntry("μπανάνα", "banana", "bananas"),
		NewEntry("πορτοκάλι", "orange", "oranges"),
		NewEntry("σταφύλι", "grape", "grapes"),
		NewEntry("ροδάκινο", "peach", "peaches"),
		NewEntry("φράουλα", "strawberry", "strawberries"),
		NewEntry("καρπούζι", "watermelon"),
		NewEntry("ανανάς", "pineapple", "pineapples"),
		NewEntry("λεμόνι", "lemon", "lemons"),
		NewEntry("λάιμ", "lime", "limes"),
		NewEntry("ντομάτα", "tomato", "tomatoes"),
		NewEntry("πατάτα", "potato", "potatoes"),
		NewEntry("καρότο", "carrot", "carrots"),
		NewEntry("κρεμμύδι", "onion", "onions"),
		NewEntry("σκόρδο", "garlic"),
		NewEntry("μπρόκολο", "broccoli"),
		NewEntry("μαρούλι", "lettuce"),
		NewEntry("σπανάκι", "spinach"),
		NewEntry("ελιά", "olive", "olives"),
		NewEntry("ελαιόλαδο", "olive oil"),
		NewEntry("αυγό", "egg", "eggs"),
		NewEntry("γάλα", "milk"),
		NewEntry("τυρί", "cheese"),
		NewEntry("φέτα", "feta", "feta cheese"),
		NewEntry("γιαούρτι", "yogurt", "yoghurt", "greek yogurt"),
		NewEntry("μέλι", "honey"),
		NewEntry("ψωμί", "bread", "loaf", "toast"),
		NewEntry("κέικ", "cake"),
		NewEntry("μπισκότο", "cookie", "cookies", "biscuit"),
		NewEntry("σοκολάτα", "chocolate"),
		NewEntry("παγωτό", "ice cream"),
		NewEntry("καφές", "coffee"),
		NewEntry("τσάι", "tea"),
		NewEntry("χυμός", "juice"),
		NewEntry("νερό", "water", "bottle of water", "water bottle"),
		NewEntry("αναψυκτικό", "drink", "beverage", "soda"),
		NewEntry("ρύζι", "rice", "cooked rice"),
		NewEntry("χυλοπίτες", "noodles"),
		NewEntry("σούπα", "soup"),
		NewEntry("σαλάτα", "salad"),
		NewEntry("κρέας", "meat"),
		NewEntry("ψάρι", "fish"),
		NewEntry("κοτόπουλο", "chicken"),
		NewEntry("μοσχάρι", "beef"),
		NewEntry("χοιρινό", "pork"),
		NewEntry("χάμπουργκερ", "burger", "hamburger"),
		NewEntry("πίτσα", "pizza"),
		NewEntry("σάντουιτς", "sandwich"),
		NewEntry("μουσακάς", "moussaka"),
		NewEntry("σουβλάκι", "souvlaki", "skewer"),
		NewEntry("γύρος", "gyros", "gyro"),
		NewEntry("σπανακόπιτα", "spanakopita", "spinach pie"),
		NewEntry("τζατζίκι", "tzatziki"),

		// Kitchen
		NewEntry("φλιτζάνι", "cup"),
		NewEntry("κούπα", "mug"),
		NewEntry("πιάτο", "plate"),
		NewEntry("μπολ", "bowl"),
		NewEntry("κουτάλι", "spoon"),
		NewEntry("πιρούνι", "fork"),
		NewEntry("μαχαίρι", "knife", "knives"),
		NewEntry("ξυλάκια", "chopsticks"),
		NewEntry("μπουκάλι", "bottle"),
		NewEntry("ποτήρι", "glass"),
		NewEntry("κατσαρόλα", "pot"),
		NewEntry("τηγάνι", "pan", "frying pan", "skillet"),
		NewEntry("επιφάνεια κοπής", "cutting board"),

		// Electronics
		NewEntry("μικροσκόπιο", "microscope"),
		NewEntry("κάμερα", "camera"),
		NewEntry("φακός", "lens"),
		NewEntry("τρίποδο", "tripod"),
		NewEntry("κινητό", "phone", "cell phone", "mobile phone", "smartphone"),
		NewEntry("τάμπλετ", "tablet"),
		NewEntry("φορητός υπολογιστής", "laptop", "notebook computer"),
		NewEntry("υπολογιστής", "computer", "pc", "desktop"),
		NewEntry("οθόνη", "monitor", "screen"),
		NewEntry("πληκτρολόγιο", "keyboard"),
		NewEntry("ποντίκι", "mouse", "computer mouse"),
		NewEntry("εκτυπωτής", "printer"),
		NewEntry("σαρωτής", "scanner"),
		NewEntry("έξυπνο ρολόι", "smartwatch"),
		NewEntry("ακουστικά", "headphones"),
		NewEntry("ψείρες", "earphones", "earbuds"),
		NewEntry("ηχείο", "speaker"),
		NewEntry("μικρόφωνο", "microphone"),
		NewEntry("τηλεόραση", "television", "tv"),
		NewEntry("ραδιόφωνο", "radio"),
		NewEntry("ρολόι", "clock"),
		NewEntry("ρολόι χειρός", "watch", "wristwatch"),

		// Home
		NewEntry("λάμπα", "lamp", "desk lamp"),
		NewEntry("φως", "light", "ceiling light"),
		NewEntry("κερί", "candle"),
		NewEntry("καθρέφτης", "mirror"),
		NewEntry("πόρτα", "door"),
		NewEntry("παράθυρο", "window"),
		NewEntry("τοίχος", "wall"),
		NewEntry("ταβάνι", "ceiling"),
		NewEntry("πάτωμα", "floor"),
		NewEntry("σκάλα", "stairs"),
		NewEntry("ασανσέρ", "elevator", "lift"),
		NewEntry("καρέκλα", "chair"),
		NewEntry("καναπές", "sofa", "couch"),
		NewEntry("τραπέζι", "table"),
		NewEntry("γραφείο", "desk"),
		NewEntry("κρεβάτι", "bed"),
		NewEntry("στρώμα", "mattress"),
		NewEntry("μαξιλάρι", "pillow"),
		NewEntry("κουβέρτα", "blanket", "comforter"),

		// Clothing and personal items
		NewEntry("ρούχα", "clothing", "clothes"),
		NewEntry("πουκάμισο", "shirt"),
		NewEntry("μπλουζάκι", "t-shirt"),
		NewEntry("παντελόνι", "pants", "trousers"),
		NewEntry("τζιν", "jeans"),
		NewEntry("φούστα", "skirt"),
		NewEntry("φόρεμα", "dress"),
		NewEntry("μπουφάν", "jacket"),
		NewEntry("παλτό", "coat"),
		NewEntry("καπέλο", "hat", "cap"),
		NewEntry("γάντια", "gloves", "glove"),
		NewEntry("κάλτσες", "socks"),
		NewEntry("παπούτσια", "shoes", "shoe", "sneakers"),
		NewEntry("επίσημα παπούτσια", "dress shoes", "dress shoe"),
		NewEntry("παντόφλες", "slippers"),
		NewEntry("τσάντα", "bag"),
		NewEntry("σακίδιο", "backpack"),
		NewEntry("τσαντάκι", "handbag", "purse"),
		NewEntry("πορτοφόλι", "wallet"),
		NewEntry("κλειδί", "key", "keys"),
		NewEntry("ομπρέλα", "umbrella"),
		NewEntry("γυαλιά", "eyeglasses", "spectacles"),

		// Paper and office
		NewEntry("βιβλίο", "book"),
		NewEntry("τετράδιο", "notebook"),
		NewEntry("περιοδικό", "magazine"),
		NewEntry("εφημερίδα", "newspaper"),
		NewEntry("έγγραφο", "document", "paperwork"),
		NewEntry("χάρτης", "map"),
		NewEntry("φωτογραφία", "photo", "picture"),
		NewEntry("ημερολόγιο", "calendar"),
		NewEntry("κασετίνα", "pencil case"),
		NewEntry("μολύβι", "pencil"),
		NewEntry("στυλό", "pen"),
		NewEntry("γόμα", "eraser"),
		NewEntry("χάρακας", "ruler"),
		NewEntry("ψαλίδι", "scissors"),
		NewEntry("κόλλα", "glue", "glue stick"),
		NewEntry("ταινία", "tape"),
		NewEntry("κουτί", "box"),
		NewEntry("φάκελος", "envelope"),

		// Cleaning and appliances
		NewEntry("κάδος απορριμμάτων", "trash can", "garbage can"),
		NewEntry("ηλεκτρική σκούπα", "vacuum", "vacuum cleaner"),
		NewEntry("σκούπα", "broom"),
		NewEntry("πανί", "cloth", "rag"),
		NewEntry("κουβάς", "bucket"),
		NewEntry("πλυντήριο", "washing machine"),
		NewEntry("στεγνωτήριο", "dryer"),
		NewEntry("σίδερο", "iron"),
		NewEntry("ψυγείο", "refrigerator", "fridge"),
		NewEntry("φούρνος", "oven"),
		NewEntry("κουζίνα", "stove", "cooktop", "range"),
		NewEntry("φούρνος μικροκυμάτων", "microwave"),
		NewEntry("πλυντήριο πιάτων", "dishwasher"),
		NewEntry("καφετιέρα", "coffee maker"),
		NewEntry("κλιματιστικό", "air conditioner", "ac"),
		NewEntry("ανεμιστήρας", "fan"),
		NewEntry("θερμάστρα", "heater"),
		NewEntry("καλοριφέρ", "radiator"),
		NewEntry("υγραντήρας", "humidifier"),
		NewEntry("καθαριστής αέρα", "air purifier"),

		// Transport and places
		NewEntry("αυτοκίνητο", "car", "auto", "vehicle"),
		NewEntry("ταξί", "taxi"),
		NewEntry("λεωφορείο", "bus"),
		NewEntry("τρένο", "train"),
		NewEntry("μετρό", "subway", "metro"),
		NewEntry("ποδήλατο", "bicycle", "bike"),
		NewEntry("μηχανή", "motorcycle", "motorbike"),
		NewEntry("αεροπλάνο", "airplane", "plane"),
		NewEntry("πλοίο", "boat", "ship"),
		NewEntry("φορτηγό", "truck"),
		NewEntry("ελικόπτερο", "helicopter"),
		NewEntry("φανάρι", "traffic light"),
		NewEntry("δρόμος", "road", "street"),
		NewEntry("γέφυρα", "bridge"),
		NewEntry("πάρκο", "park"),
		NewEntry("κήπος", "garden"),

		// Nature
		NewEntry("δέντρο", "tree"),
		NewEntry("λουλούδι", "flower"),
		NewEntry("γρασίδι", "grass"),
		NewEntry("θάλασσα", "sea", "ocean"),
		NewEntry("ποτάμι", "river"),
		NewEntry("λίμνη", "lake"),
		NewEntry("βουνό", "mountain"),
		NewEntry("ουρανός", "sky"),
		NewEntry("σύννεφο", "cloud"),
		NewEntry("ήλιος", "sun"),
		NewEntry("φεγγάρι", "moon"),
		NewEntry("αστέρι", "star"),
		NewEntry("βροχή", "rain"),
		NewEntry("χιόνι", "snow"),
		NewEntry("άνεμος", "wind"),

		// Animals
		NewEntry("γάτα", "cat"),
		NewEntry("σκύλος", "dog"),
		NewEntry("πουλί", "bird"),
		NewEntry("άλογο", "horse"),
		NewEntry("αγελάδα", "cow"),
		NewEntry("γουρούνι", "pig"),
		NewEntry("πρόβατο", "sheep"),
		NewEntry("κότα", "hen", "chicken animal"),
		NewEntry("πάπια", "duck"),
		NewEntry("χρυσόψαρο", "goldfish"),

		// People
		NewEntry("άνθρωπος", "person", "human"),
		NewEntry("άντρας", "man", "male"),
		NewEntry("γυναίκα", "woman", "female"),
		NewEntry("παιδί", "child", "kid"),
		NewEntry("αγόρι", "boy"),
		NewEntry("κορίτσι", "girl"),
		NewEntry("μωρό", "baby"),
		NewEntry("φίλος", "friend"),
		NewEntry("οικογένεια", "family"),
		NewEntry("μαθητής", "student"),
		NewEntry("δάσκαλος", "teacher"),
		NewEntry("γιατρός", "doctor"),
		NewEntry("νοσοκόμα", "nurse"),
		NewEntry("αστυνομικός", "police", "police officer"),
		NewEntry("πυροσβέστης", "firefighter"),
		NewEntry("μάγειρας", "chef", "cook"),
		NewEntry("αθλητής", "athlete"),
		NewEntry("μουσικός", "musician"),
		NewEntry("καλλιτέχνης", "artist"),
		NewEntry("ηθοποιός", "actor", "actress"),

		// Music
		NewEntry("μουσικό όργανο", "instrument", "musical instrument"),
		NewEntry("κιθάρα", "guitar"),
		NewEntry("πιάνο", "piano"),
		NewEntry("βιολί", "violin"),
		NewEntry("τύμπανο", "drum", "drums"),
		NewEntry("φλάουτο", "flute"),
		NewEntry("τρομπέτα", "trumpet"),
		NewEntry("σαξόφωνο", "saxophone"),
		NewEntry("μπουζούκι", "bouzouki"),
	}
}
