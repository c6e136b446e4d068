package classify

import "regexp"

// builtinRule pairs a matcher with the category it assigns.
type builtinRule struct {
	re       *regexp.Regexp
	category string
}

// incomeRules classify positive amounts, evaluated in order against the
// cleaned upper-cased label; first match wins.
var incomeRules = []builtinRule{
	{regexp.MustCompile(`(?i)DASSAULT`), "Revenus / Salaire"},
	{regexp.MustCompile(`(?i)\bSALAIRE\b`), "Revenus / Salaire"},
	{regexp.MustCompile(`(?i)\bCAF\b`), "Revenus / CAF"},
	{regexp.MustCompile(`(?i)\bREMBOUR`), "Revenus / Remboursement"},
	{regexp.MustCompile(`(?i)\bDIVID`), "Revenus / Dividendes"},
	{regexp.MustCompile(`(?i)\bVIR\s+INST\b`), "Revenus / Virement instantané"},
	{regexp.MustCompile(`(?i)\bVIR\s+PERMANENT\b`), "Revenus / Virement permanent"},
}

// expenseRules classify negative amounts. The order is load-bearing:
// patterns overlap, and the savings patterns (PEL, LIVRET, ...) must stay
// ahead of the generic transfer pattern or savings transfers would be
// classified as plain transfers.
var expenseRules = []builtinRule{
	// Savings / transfers
	{regexp.MustCompile(`(?i)\bPEL\b`), "Épargne / PEL"},
	{regexp.MustCompile(`(?i)\bLIVRET\b|\bLDDS\b|\bLEP\b|\bAV\b|\bASSURANCE\s+VIE\b`), "Épargne / Placements"},
	{regexp.MustCompile(`(?i)\bVIR\s+SEPA\b|\bVIREMENT\b`), "Virements / Transferts"},

	// Housing / utilities
	{regexp.MustCompile(`(?i)\bLOYER\b|\bFONCIA\b|\bNEXITY\b|\bCITYA\b|\bCDC\s+HABITAT\b`), "Logement / Loyer"},
	{regexp.MustCompile(`(?i)\bEDF\b|\bENGIE\b|\bTOTALENERGIES\b|\bGDF\b`), "Logement / Énergie"},
	{regexp.MustCompile(`(?i)\bVEOLIA\b|\bSUEZ\b|\bEAU\b`), "Logement / Eau"},
	{regexp.MustCompile(`(?i)\bORANGE\b|\bSFR\b|\bFREE\b|\bBOUYGUES\b`), "Abonnements / Télécom"},

	// Insurance
	{regexp.MustCompile(`(?i)\bASSURANCE\b|\bACCIDENTS\s+DE\s+LA\s+VIE\b|\bPREVOYANCE\b`), "Assurances / Prévoyance"},
	{regexp.MustCompile(`(?i)\bAUTOMOBILE\b|\bAUTO\b|\bMAIF\b|\bMACIF\b|\bAXA\b|\bALLIANZ\b`), "Assurances / Auto"},

	// Digital subscriptions
	{regexp.MustCompile(`(?i)\bSPOTIFY\b`), "Abonnements / Spotify"},
	{regexp.MustCompile(`(?i)\bNETFLIX\b`), "Abonnements / Netflix"},
	{regexp.MustCompile(`(?i)\bDISNEY\b`), "Abonnements / Disney+"},
	{regexp.MustCompile(`(?i)\bAMAZON\s+PRIME\b|\bPRIME\b`), "Abonnements / Amazon Prime"},
	{regexp.MustCompile(`(?i)\bAPPLE\b|\bCOM/BILL\b`), "Abonnements / Apple"},
	{regexp.MustCompile(`(?i)\bMICROSOFT\b|\bMSBILL\b|\bSUBSCR\b`), "Abonnements / Microsoft"},
	{regexp.MustCompile(`(?i)\bOPENAI\b|\bCHATGPT\b`), "Abonnements / IA"},
	{regexp.MustCompile(`(?i)\bOVH\b|\bGITHUB\b|\bDROPBOX\b|\bNOTION\b|\bADOBE\b`), "Abonnements / Services web"},

	// Transport
	{regexp.MustCompile(`(?i)\bIMAGINE\s+R\b|\bNAVIGO\b|\bRATP\b`), "Transport / Navigo"},
	{regexp.MustCompile(`(?i)\bSNCF\b|\bOUIGO\b|\bTGV\b`), "Transport / Train"},
	{regexp.MustCompile(`(?i)\bUBER\b|\bUBR\*?\b|\bBOLT\b|\bHEETCH\b|\bFREENOW\b`), "Transport / VTC"},
	{regexp.MustCompile(`(?i)\bPARKING\b|\bINDIGO\b|\bVINCI\s+PARK\b`), "Transport / Parking"},
	{regexp.MustCompile(`(?i)\bTOTAL\b|\bESSO\b|\bSHELL\b|\bBP\b`), "Transport / Carburant"},

	// Groceries
	{regexp.MustCompile(`(?i)\bCARREFOUR\b|\bAUCHAN\b|\bLECLERC\b|\bINTERMARCHE\b|\bLIDL\b|\bALDI\b|\bMONOPRIX\b|\bFRANPRIX\b|\bPICARD\b|\bBIOCOOP\b`), "Courses / Supermarché"},

	// Restaurants / going out
	{regexp.MustCompile(`(?i)\bMCDONALD\b|\bBURGER\s+KING\b|\bKFC\b|\bSUBWAY\b|\bFIVE\s+GUYS\b|\bSTARBUCKS\b|\bDOMINO'?S\b|\bDEL\s+ARTE\b`), "Restaurants / Fast-food"},
	{regexp.MustCompile(`(?i)\bSUSHI\b|\bPIZZA\b|\bHIPPOPOTAMUS\b|\bBRASSERIE\b|\bRESTAUR`), "Restaurants / Sorties"},
	{regexp.MustCompile(`(?i)\bDELIVEROO\b|\bUBER\s*EATS\b|\bJUST\s*EAT\b|\bNYX\*NYXEASYMEAL\b`), "Restaurants / Livraison"},

	// Shopping
	{regexp.MustCompile(`(?i)\bAMAZON\b`), "Shopping / Amazon"},
	{regexp.MustCompile(`(?i)\bFNAC\b|\bDARTY\b|\bBOULANGER\b|\bIKEA\b|\bDECATHLON\b`), "Shopping / Magasins"},
	{regexp.MustCompile(`(?i)\bLEBONCOIN\b|\bVINTED\b`), "Shopping / Occasion"},
	{regexp.MustCompile(`(?i)\bPAYPAL\b`), "Paiements / PayPal"},

	// Health
	{regexp.MustCompile(`(?i)\bPHARM\b|\bDOCTOLIB\b|\bCLINIQUE\b|\bHOPITAL\b|\bLABORATOIRE\b|\bOPTIC\b|\bDENT`), "Santé / Soins"},

	// Taxes / fines
	{regexp.MustCompile(`(?i)\bDGFIP\b|\bIMPOT\b|\bTAXE\b`), "Impôts / Taxes"},
	{regexp.MustCompile(`(?i)\bAMENDE\b|\bANTAI\b`), "Impôts / Amendes"},

	// Gambling
	{regexp.MustCompile(`(?i)\bFDJ\b|\bPMU\b|\bWINAMAX\b|\bUNIBET\b|\bPOKERSTARS\b`), "Loisirs / Jeux"},

	// Bank fees
	{regexp.MustCompile(`(?i)\bFRAIS\b|\bCOTIS\b|\bAGIOS\b|\bCOMMISSION\b`), "Frais / Bancaires"},

	// Card terminal aggregators (SumUp, Zettle, ...)
	{regexp.MustCompile(`(?i)\bSUMUP\b|\bZETTLE\b|\bSQUARE\b`), "Paiements / Marchands"},

	// Small-merchant catch-all for "BOULOGNE-BILL ..." micro payments
	{regexp.MustCompile(`(?i)\bBOULOGNE-?BILL\b`), "Divers / Petites dépenses"},
}
