package metadata

// genres is the reference vocabulary of valid genre names, following the
// MusicBrainz genre list. Keywords are validated against it before they
// are accepted as genres.
var genres = map[string]bool{}

func init() {
	for _, g := range genreList {
		genres[g] = true
	}
}

var genreList = []string{
	"acid house",
	"acid jazz",
	"acid techno",
	"acoustic blues",
	"acoustic rock",
	"afrobeat",
	"alternative country",
	"alternative dance",
	"alternative folk",
	"alternative hip hop",
	"alternative metal",
	"alternative punk",
	"alternative rock",
	"ambient",
	"ambient house",
	"ambient techno",
	"americana",
	"aor",
	"art pop",
	"art punk",
	"art rock",
	"atmospheric black metal",
	"atmospheric drum and bass",
	"avant-garde",
	"avant-garde jazz",
	"bachata",
	"baile funk",
	"ballad",
	"baroque",
	"bass house",
	"bass music",
	"bassline",
	"beat music",
	"bebop",
	"berlin school",
	"big band",
	"big beat",
	"black metal",
	"blackened death metal",
	"blackgaze",
	"blue-eyed soul",
	"bluegrass",
	"blues",
	"blues rock",
	"boogie",
	"boogie-woogie",
	"boom bap",
	"bossa nova",
	"breakbeat",
	"breakcore",
	"breaks",
	"britpop",
	"broken beat",
	"bubblegum pop",
	"cantopop",
	"celtic",
	"chamber pop",
	"champeta",
	"chanson",
	"chillout",
	"chillwave",
	"chiptune",
	"christian rock",
	"city pop",
	"classic rock",
	"classical",
	"club",
	"cold wave",
	"comedy",
	"conscious hip hop",
	"contemporary classical",
	"contemporary folk",
	"contemporary jazz",
	"contemporary r&b",
	"country",
	"country blues",
	"country folk",
	"country pop",
	"country rock",
	"crossover prog",
	"crust punk",
	"cumbia",
	"cyberpunk",
	"dance",
	"dance-pop",
	"dance-punk",
	"dancehall",
	"dark ambient",
	"dark electro",
	"dark folk",
	"dark techno",
	"dark wave",
	"death metal",
	"deathcore",
	"deep house",
	"deep techno",
	"desert rock",
	"digital hardcore",
	"disco",
	"diva house",
	"dixieland",
	"djent",
	"doo-wop",
	"doom metal",
	"downtempo",
	"dream pop",
	"drill",
	"drone",
	"drum and bass",
	"dub",
	"dub techno",
	"dubstep",
	"dungeon synth",
	"east coast hip hop",
	"ebm",
	"electro",
	"electro house",
	"electro swing",
	"electro-funk",
	"electro-industrial",
	"electroclash",
	"electronic",
	"electronic rock",
	"electronica",
	"electropop",
	"emo",
	"emocore",
	"ethereal wave",
	"euro house",
	"eurodance",
	"europop",
	"experimental",
	"experimental electronic",
	"experimental hip hop",
	"experimental rock",
	"filk",
	"flamenco",
	"folk",
	"folk metal",
	"folk pop",
	"folk punk",
	"folk rock",
	"folktronica",
	"footwork",
	"freak folk",
	"free improvisation",
	"free jazz",
	"french house",
	"funk",
	"funk carioca",
	"funk metal",
	"funk rock",
	"funky house",
	"fusion",
	"future bass",
	"future funk",
	"future garage",
	"futurepop",
	"gabber",
	"gangsta rap",
	"garage",
	"garage house",
	"garage punk",
	"garage rock",
	"ghetto house",
	"ghettotech",
	"glam",
	"glam metal",
	"glam rock",
	"glitch",
	"glitch hop",
	"goa trance",
	"gospel",
	"gothic",
	"gothic metal",
	"gothic rock",
	"gregorian chant",
	"grime",
	"grindcore",
	"groove metal",
	"grunge",
	"hard bop",
	"hard house",
	"hard rock",
	"hard techno",
	"hard trance",
	"hardcore hip hop",
	"hardcore punk",
	"hardcore techno",
	"hardstyle",
	"heavy metal",
	"hi-nrg",
	"hip hop",
	"hip house",
	"honky tonk",
	"horrorcore",
	"house",
	"hyperpop",
	"hypnagogic pop",
	"idm",
	"illbient",
	"indie",
	"indie folk",
	"indie pop",
	"indie rock",
	"indietronica",
	"industrial",
	"industrial metal",
	"industrial rock",
	"industrial techno",
	"instrumental",
	"instrumental hip hop",
	"instrumental rock",
	"italo-disco",
	"italo house",
	"j-pop",
	"j-rock",
	"jazz",
	"jazz blues",
	"jazz fusion",
	"jazz rap",
	"jazz rock",
	"jungle",
	"k-pop",
	"klezmer",
	"kosmische",
	"krautrock",
	"latin",
	"latin jazz",
	"latin pop",
	"leftfield",
	"lo-fi",
	"lounge",
	"lovers rock",
	"madchester",
	"mambo",
	"mandopop",
	"martial industrial",
	"math rock",
	"mathcore",
	"melodic black metal",
	"melodic death metal",
	"melodic house",
	"melodic metalcore",
	"melodic techno",
	"melodic trance",
	"merengue",
	"metal",
	"metalcore",
	"microhouse",
	"minimal",
	"minimal techno",
	"minimal wave",
	"modern classical",
	"motown",
	"musique concrete",
	"neo soul",
	"neo-progressive rock",
	"neo-psychedelia",
	"neofolk",
	"new age",
	"new beat",
	"new jack swing",
	"new romantic",
	"new wave",
	"no wave",
	"noise",
	"noise pop",
	"noise rock",
	"noisecore",
	"nu disco",
	"nu jazz",
	"nu metal",
	"opera",
	"orchestral",
	"outlaw country",
	"pop",
	"pop metal",
	"pop punk",
	"pop rap",
	"pop rock",
	"pop soul",
	"post-bop",
	"post-classical",
	"post-grunge",
	"post-hardcore",
	"post-industrial",
	"post-metal",
	"post-punk",
	"post-rock",
	"power electronics",
	"power metal",
	"power pop",
	"progressive",
	"progressive house",
	"progressive metal",
	"progressive rock",
	"progressive trance",
	"psychedelic",
	"psychedelic folk",
	"psychedelic pop",
	"psychedelic rock",
	"psychobilly",
	"psytrance",
	"punk",
	"punk rock",
	"r&b",
	"ragga",
	"ragga jungle",
	"ragtime",
	"rap metal",
	"rap rock",
	"rave",
	"reggae",
	"reggaeton",
	"rock",
	"rock and roll",
	"rockabilly",
	"roots reggae",
	"rumba",
	"salsa",
	"samba",
	"screamo",
	"shoegaze",
	"ska",
	"ska punk",
	"skate punk",
	"slowcore",
	"sludge metal",
	"smooth jazz",
	"soca",
	"soft rock",
	"soul",
	"soul jazz",
	"soundtrack",
	"southern rock",
	"space ambient",
	"space rock",
	"speed garage",
	"speed metal",
	"spoken word",
	"stoner metal",
	"stoner rock",
	"surf rock",
	"swing",
	"symphonic metal",
	"symphonic rock",
	"synth-pop",
	"synthwave",
	"tango",
	"tech house",
	"technical death metal",
	"techno",
	"thrash metal",
	"trance",
	"trap",
	"trap metal",
	"tribal house",
	"trip hop",
	"tropical house",
	"turntablism",
	"uk drill",
	"uk funky",
	"uk garage",
	"uk hardcore",
	"vaporwave",
	"viking metal",
	"vocal house",
	"vocal jazz",
	"vocal trance",
	"witch house",
	"world",
	"zydeco",
}
