package document

import "regie/internal/docbuilder"

// Type identifies one of the documents the office produces.
type Type string

const (
	TypeDemandeAutorisation        Type = "demande-autorisation"
	TypeCertificatPaiement         Type = "certificat-paiement"
	TypeCertificatPaiementCombined Type = "certificat-paiement-combined"
	TypeOrdrePaiement              Type = "ordre-paiement"
	TypeMandatPaiement             Type = "mandat-paiement"
	TypeDepenseRecapitulatif       Type = "depense-regie-recapitulatif"
	TypeReferenceValues            Type = "reference-values"
	TypeBordereau                  Type = "bordereau"
	TypeRecuCombined               Type = "recu-combined"
	TypeRCARSalariale              Type = "rcar-salariale"
	TypeRCARPatronale              Type = "rcar-patronale"
	TypeRoleJournees               Type = "role-journees"
)

// fileBases maps a type to the stem of its output filename. Types not
// listed here fall back to a sanitized form of the type tag.
var fileBases = map[Type]string{
	TypeDemandeAutorisation:        "Demande_Autorisation_Paiement",
	TypeCertificatPaiement:         "Certificat_Paiement",
	TypeCertificatPaiementCombined: "Certificat_Paiement",
	TypeOrdrePaiement:              "Ordre_Paiement",
	TypeMandatPaiement:             "Mandat_Paiement",
	TypeDepenseRecapitulatif:       "Depense_Regie_Recapitulatif",
	TypeReferenceValues:            "Valeurs_Reference",
	TypeBordereau:                  "Bordereau",
	TypeRecuCombined:               "Recu",
	TypeRCARSalariale:              "RCAR",
	TypeRCARPatronale:              "RCAR_PATRONALE",
}

var titles = map[Type]string{
	TypeDemandeAutorisation:        "DEMANDE D'AUTORISATION DE PAIEMENT",
	TypeCertificatPaiement:         "CERTIFICAT DE PAIEMENT",
	TypeCertificatPaiementCombined: "CERTIFICAT DE PAIEMENT",
	TypeOrdrePaiement:              "ORDRE DE PAIEMENT",
	TypeMandatPaiement:             "MANDAT DE PAIEMENT",
	TypeDepenseRecapitulatif:       "DEPENSE EN REGIE (RECAPITULATIF)",
	TypeReferenceValues:            "VALEURS DE REFERENCE",
	TypeBordereau:                  "BORDEREAU",
	TypeRecuCombined:               "RECU",
	TypeRCARSalariale:              "ETAT DE VERSEMENT RCAR (COTISATION SALARIALE)",
	TypeRCARPatronale:              "ETAT DE VERSEMENT RCAR (COTISATION PATRONALE)",
}

// renderFunc lays out one document type onto a builder.
type renderFunc func(b docbuilder.Builder, req *Request) error

// renderers binds each known type to its layout. Types absent from the map
// are rendered by the generic recap layout.
var renderers = map[Type]renderFunc{
	TypeRecuCombined:               renderRecu,
	TypeDemandeAutorisation:        renderDemandeAutorisation,
	TypeCertificatPaiement:         renderCertificatPaiement,
	TypeCertificatPaiementCombined: renderCertificatPaiement,
	TypeOrdrePaiement:              renderOrdrePaiement,
	TypeMandatPaiement:             renderMandatPaiement,
	TypeBordereau:                  renderBordereau,
	TypeRCARSalariale:              renderRCARSalariale,
	TypeRCARPatronale:              renderRCARPatronale,
	TypeRoleJournees:               renderRole,
}
