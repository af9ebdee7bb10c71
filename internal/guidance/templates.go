package guidance

import "fmt"

const acsDisambiguation = `I couldn't find an exact match in the ACS FAQs. Based on the context, ACS could refer to:

**Possible meanings:**
• **Administration for Children's Services** - A government agency that provides child welfare services
• **American Chemical Society** - A professional organization for chemists
• **American Cancer Society** - A health organization focused on cancer research and support
• **Access Control System** - A security system for managing entry permissions

**For more specific information about ACS in your context, you can:**
• Contact your local ACS office directly
• Visit their official website
• Check their official documentation
• Ask a more specific question about the particular ACS service you're interested in

Would you like me to help you find contact information for a specific ACS organization?`

const nycOverview = `I couldn't find an exact match in the ACS FAQs. For NYC ACS (Administration for Children's Services):

**NYC ACS Overview:**
• NYC ACS is the city agency responsible for child welfare services in New York City
• They provide child protective services, foster care, adoption services, and family support
• ACS works to ensure the safety and well-being of children and families

**Common Services:**
• Child protective investigations
• Foster care and adoption services
• Family support and prevention programs
• Emergency services for children in crisis

**For specific information:**
• Visit: nyc.gov/site/acs
• Call: 311 for general NYC services
• Emergency child abuse hotline: 1-800-342-3720

**Note:** This is general information. For specific questions about cases, services, or procedures, please contact NYC ACS directly through their official channels.`

const procedureTemplate = `I couldn't find an exact match in the ACS FAQs for your question about "%s".

**For process and procedure questions:**
• Contact ACS directly for the most accurate information
• Visit their official website for detailed guides
• Speak with a caseworker or representative
• Check their official documentation

**General steps for most ACS processes:**
1. Initial contact or application
2. Documentation review
3. Assessment or investigation (if applicable)
4. Service planning
5. Implementation and follow-up

**Important:** Procedures can vary by location and specific circumstances. Always verify information through official ACS channels.`

const generalTemplate = `I couldn't find an exact match in the ACS FAQs for your question: "%s"

**To get accurate information:**
• Contact ACS directly through their official channels
• Visit their official website
• Speak with a caseworker or representative
• Check their current documentation and policies

**Alternative resources:**
• Local social services office
• Community organizations that work with ACS
• Legal aid societies (for legal questions)
• Professional associations related to your specific question

**Need immediate help?**
• For emergencies: Call 911
• For child abuse reports: Call the child abuse hotline
• For general questions: Contact your local ACS office

Would you like help finding contact information for your local ACS office?`

const apologyTemplate = `I couldn't find an exact match in the ACS FAQs for your question: "%s"

**For the most accurate information:**
• Contact ACS directly through their official website
• Call their main office or helpline
• Visit their local office in person
• Check their official documentation

**Emergency contacts:**
• For immediate child safety concerns: Call 911
• For non-emergency questions: Contact your local ACS office

I apologize that I couldn't provide a more specific answer. ACS policies and procedures can be complex and vary by location.`

func renderNYCOverview(string) string { return nycOverview }

func renderDisambiguation(string) string { return acsDisambiguation }

func renderProcedure(question string) string { return fmt.Sprintf(procedureTemplate, question) }

func renderGeneral(question string) string { return fmt.Sprintf(generalTemplate, question) }

// Apology is the text used when a renderer itself fails.
func Apology(question string) string { return fmt.Sprintf(apologyTemplate, question) }
