// Package i18n translates menu titles.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
}

var matcher = language.NewMatcher(supported)

// Translator translates menu titles into one language. It implements
// menu.Translator.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for the supported language closest to lang. An
// empty or unknown lang selects English.
func New(lang string) *Translator {
	_, idx, _ := matcher.Match(language.Make(lang))
	tag := supported[idx]

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(titles)),
	}
}

// Tag returns the language titles are translated into.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// Translate returns the translation of title, or title itself when none is
// known.
func (t *Translator) Translate(title string) string {
	return t.printer.Sprintf(title)
}

// Languages returns the supported language tags.
func Languages() []language.Tag {
	return supported
}

var titles = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	for _, tr := range translations {
		_ = b.SetString(language.German, tr.title, tr.de)
		_ = b.SetString(language.French, tr.title, tr.fr)
	}

	return b
}

type translation struct {
	title, de, fr string
}

var translations = []translation{
	{"&File", "&Datei", "&Fichier"},
	{"&Open...\tCtrl+O", "Ö&ffnen...\tCtrl+O", "&Ouvrir...\tCtrl+O"},
	{"&Close\tQ", "&Schließen\tQ", "&Fermer\tQ"},
	{"Save &As...", "Speichern &unter...", "Enregistrer &sous..."},
	{"&Print...", "&Drucken...", "&Imprimer..."},
	{"Copy &Path", "&Pfad kopieren", "Copier le &chemin"},
	{"P&roperties", "&Eigenschaften", "P&ropriétés"},
	{"E&xit\tCtrl+C", "&Beenden\tCtrl+C", "&Quitter\tCtrl+C"},
	{"&View", "&Ansicht", "&Affichage"},
	{"&Single Page\t6", "&Einzelseite\t6", "Page &unique\t6"},
	{"&Facing\t7", "&Doppelseite\t7", "Pages &en regard\t7"},
	{"&Book View\t8", "&Buchansicht\t8", "Vue &livre\t8"},
	{"Show Pages &Continuously\tC", "Seiten &fortlaufend anzeigen\tC", "Pages en &continu\tC"},
	{"F&ullscreen\tF", "&Vollbild\tF", "&Plein écran\tF"},
	{"Book&marks\tB", "&Lesezeichen\tB", "&Signets\tB"},
	{"Show &Toolbar\tT", "&Werkzeugleiste anzeigen\tT", "Afficher la &barre d'outils\tT"},
	{"Select &All\tCtrl+A", "&Alles auswählen\tCtrl+A", "&Tout sélectionner\tCtrl+A"},
	{"Cop&y Selection\tY", "Auswahl &kopieren\tY", "Cop&ier la sélection\tY"},
	{"&Go To", "&Gehe zu", "A&ller à"},
	{"&Next Page\tN", "&Nächste Seite\tN", "Page &suivante\tN"},
	{"&Previous Page\tP", "&Vorherige Seite\tP", "Page &précédente\tP"},
	{"&First Page\tHome", "&Erste Seite\tHome", "P&remière page\tHome"},
	{"&Last Page\tEnd", "&Letzte Seite\tEnd", "&Dernière page\tEnd"},
	{"Pa&ge...\tCtrl+G", "&Seite...\tCtrl+G", "Pa&ge...\tCtrl+G"},
	{"&Back\t[", "&Zurück\t[", "&Retour\t["},
	{"F&orward\t]", "V&orwärts\t]", "&Avancer\t]"},
	{"&Zoom", "&Zoom", "&Zoom"},
	{"Fit &Page\t0", "&Ganze Seite\t0", "&Page entière\t0"},
	{"&Actual Size\t1", "&Originalgröße\t1", "&Taille réelle\t1"},
	{"Fit &Width\t2", "Seiten&breite\t2", "&Largeur de page\t2"},
	{"Fit &Content\t3", "&Inhalt einpassen\t3", "Ajuster au &contenu\t3"},
	{"Custom &Zoom...\tZ", "&Zoomfaktor...\tZ", "&Zoom personnalisé...\tZ"},
	{"&Help", "&Hilfe", "Aid&e"},
	{"&Keyboard Shortcuts\t?", "&Tastenkürzel\t?", "&Raccourcis clavier\t?"},
	{"&About", "Ü&ber", "À &propos"},
	{"Copy &Link Address", "&Linkadresse kopieren", "Copier l'adresse du &lien"},
	{"Copy Co&mment", "&Kommentar kopieren", "Copier le co&mmentaire"},
	{"&Open Document", "Dokument ö&ffnen", "&Ouvrir le document"},
	{"&Pin Document", "Dokument an&heften", "É&pingler le document"},
	{"&Remove From History", "Aus &Verlauf entfernen", "&Retirer de l'historique"},
}
