package screens

import "strings"

const logoArt = `
 _____ ___    _   ___  ___
|_   _| _ \  /_\ |   \| __|
  | | |   / / _ \| |) | _|
  |_| |_|_\/_/ \_\___/|___|
`

const psychicArt = `
        .--.            .--.
       /    \__________/    \
      |    .'          '.    |
       \  /   (o)  (o)   \  /
        '|        /\      |'
         |      '----'    |
          \              /
           '.__________.'
             /   ||   \
            /  / || \  \
           (__/  ||  \__)
                 ||
                 \ \___
                  \____)
`

const psychicSparkles = `
   *                          *

 .                               .
                *
      *                     *

 *                              *
                                   .
        .                *

   *                           *
              .     *
`

const mouseArt = `
     /\                    /\
    /  \                  /  \
   / /\ \________________/ /\ \
   \/  '                  '  \/
      |    (o)      (o)    |
      |  @@      ^^     @@ |
       \      \____/      /
        '.______________.'
         /   |      |   \
        /    |      |    \
       (_____|      |_____)    ___
             \______/_________/  /
                             /__/
`

const mouseSparks = `
 \                                 /
  \\                             //
   >                            <

 -=                              =-


 /                                 \
//                                 \\

    \\                         //
     >                        <
`

// flash replaces every drawn cell of art with glyph.
func flash(art string, glyph rune) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n':
			return r
		default:
			return glyph
		}
	}, art)
}
