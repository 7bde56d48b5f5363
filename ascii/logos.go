package ascii

// blush returns a 22-line cat face with blushing cheeks.
func blush() []string {
	return splitArt(`
        /\                 /\
       /  \               /  \
      /    \_____________/    \
     /                         \
    |                           |
    |    ___           ___      |
    |   /   \         /   \     |
    |  |  o  |       |  o  |    |
    |   \___/         \___/     |
    |                           |
    |   ///      __      ///    |
    |            \/             |
    |      \____/  \____/       |
    |                           |
     \                         /
      \                       /
       '-._               _.-'
           '-._________.-'
              |       |
             /|       |\
            / |       | \
           (__|_______|__)`)
}

// loaf returns a 16-line cat folded into a bread loaf.
func loaf() []string {
	return splitArt(`
              /\_/\
             ( -.- )
              > ^ <
         .---'     '---.
        /               \
       /                 \
      |                   |
      |                   |
      |                   |
      |                   |
      |                   |
       \                 /
        '.             .'
          '-._______.-'
            ((     ))
             ''   ''`)
}

// peek returns an 18-line cat peeking over a wall.
func peek() []string {
	return splitArt(`
            /\         /\
           /  \       /  \
          /    \_____/    \
         |                 |
         |   (o)     (o)   |
         |        ^        |
         |     \_/ \_/     |
          \               /
     ______'-._________.-'______
    |  __  |  __  |  __  |  __  |
    |_|  |_|_|  |_|_|  |_|_|  |_|
    |  __  |  __  |  __  |  __  |
    |_|  |_|_|  |_|_|  |_|_|  |_|
    |  __  |  __  |  __  |  __  |
    |_|  |_|_|  |_|_|  |_|_|  |_|
    |  __  |  __  |  __  |  __  |
    |_|  |_|_|  |_|_|  |_|_|  |_|
    |___________________________|`)
}

// windowsClient returns the 18-line four-pane Windows 10/11 logo.
func windowsClient() []string {
	return []string{
		"                               ..,,",
		"                    ....,,:;+ccllll",
		"      ...,,+:;  cllllllllllllllllll",
		",cclllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"llllllllllllll  lllllllllllllllllll",
		"`'ccllllllllll  lllllllllllllllllll",
		"       `' \\*::  :ccllllllllllllllll",
		"                       ````''*::cll",
	}
}

// windowsServer returns the 17-line waving-flag Windows Server logo.
func windowsServer() []string {
	return []string{
		"        ,.=:!!t3Z3z.,",
		"       :tt:::tt333EE3",
		"       Et:::ztt33EEEL @Ee.,      ..,",
		"      ;tt:::tt333EE7 ;EEEEEEttttt33#",
		"     :Et:::zt333EEQ. $EEEEEttttt33QL",
		"     it::::tt333EEF @EEEEEEttttt33F",
		"    ;3=*^```\"*4EEV :EEEEEEttttt33@.",
		"    ,.=::::!t=., ` @EEEEEEtttz33QF",
		"   ;::::::::zt33)   \"4EEEtttji3P*",
		"  :t::::::::tt33.:Z3z..  `` ,..g.",
		"  i::::::::zt33F AEEEtttt::::ztF",
		" ;:::::::::t33V ;EEEttttt::::t3",
		" E::::::::zt33L @EEEtttt::::z3F",
		"{3=*^```\"*4E3) ;EEEtttt:::::tZ`",
		"             ` :EEEEtttt::::z7",
		"                 \"VEzjt:;;z>*`",
		"",
	}
}

// windowsCompact returns the 10-line minimalist four-pane logo.
func windowsCompact() []string {
	return []string{
		"################  ################",
		"################  ################",
		"################  ################",
		"################  ################",
		"################  ################",
		"",
		"################  ################",
		"################  ################",
		"################  ################",
		"################  ################",
	}
}
