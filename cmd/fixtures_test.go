package main

const itemsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<items total_record_count="25">
  <item link="https://api-eu.hosted.exlibrisgroup.com/almaws/v1/bibs/990001/holdings/2201/items/2301">
    <bib_data><mms_id>990001</mms_id><title>Salzburger Jahrbuch</title></bib_data>
    <holding_data>
      <holding_id>2201</holding_id>
      <call_number>II 123.456</call_number>
    </holding_data>
    <item_data>
      <pid>2301</pid>
      <barcode>+ZZ1234</barcode>
      <base_status desc="Item in place">1</base_status>
      <policy desc="Reference only">REF</policy>
      <library desc="Hauptbibliothek">HB</library>
      <location desc="Magazin">MAG</location>
      <public_note>Reading room only</public_note>
      <description>Jg. 1 (2001)</description>
    </item_data>
  </item>
  <item>
    <holding_data>
      <holding_id>2201</holding_id>
      <call_number>II 123.456</call_number>
    </holding_data>
    <item_data>
      <pid>2302</pid>
      <barcode></barcode>
      <base_status desc="Item not in place">0</base_status>
      <due_date>2024-05-30T21:59:00Z</due_date>
      <process_type desc="Loan">LOAN</process_type>
      <policy desc="Loan 4 weeks">LOAN4</policy>
      <library desc="Hauptbibliothek">HB</library>
      <location desc="Magazin">MAG</location>
    </item_data>
  </item>
  <item>
    <holding_data>
      <holding_id>2202</holding_id>
      <call_number>III 9</call_number>
    </holding_data>
    <item_data>
      <pid>2303</pid>
      <barcode>+ZZ9999</barcode>
      <base_status desc="Item not in place">0</base_status>
      <due_date>2024-06-01T21:59:00Z</due_date>
      <process_type desc="Damaged">DAMAGED</process_type>
      <policy></policy>
      <library desc="Fachbereichsbibliothek Naturwissenschaften">FBNW</library>
      <location desc="Freihand">FH</location>
    </item_data>
  </item>
</items>`

const emptyItemsXML = `<items total_record_count="0"/>`

const holdingsListXML = `<holdings total_record_count="4">
  <holding link="https://api-eu.hosted.exlibrisgroup.com/almaws/v1/bibs/990002/holdings/3301">
    <holding_id>3301</holding_id>
    <library desc="Hauptbibliothek">HB</library>
    <location desc="Magazin">MAG</location>
    <call_number>Z 100</call_number>
  </holding>
  <holding><holding_id>3302</holding_id></holding>
  <holding><holding_id>3303</holding_id></holding>
  <holding><holding_id>3304</holding_id></holding>
</holdings>`

const holding3301XML = `<holding>
  <holding_id>3301</holding_id>
  <record>
    <leader>00000nx  a2200000zn 4500</leader>
    <controlfield tag="001">3301</controlfield>
    <datafield tag="852" ind1="8" ind2="1">
      <subfield code="b">HB</subfield>
      <subfield code="c">MAG</subfield>
      <subfield code="h">Z 100</subfield>
      <subfield code="z">Ask at the desk</subfield>
    </datafield>
    <datafield tag="852" ind1="8" ind2="1">
      <subfield code="b">HB</subfield>
      <subfield code="h">Z 100a</subfield>
    </datafield>
    <datafield tag="866" ind1="3" ind2="0">
      <subfield code="a">1.1950 - 45.1994</subfield>
      <subfield code="z">Jg. 12 fehlt</subfield>
    </datafield>
    <datafield tag="866" ind1=" " ind2="0">
      <subfield code="a">Bestand:</subfield>
      <subfield code="z">Laufend</subfield>
    </datafield>
  </record>
</holding>`

const holding3303XML = `<holding>
  <holding_id>3303</holding_id>
  <record>
    <datafield tag="852" ind1="8" ind2=" ">
      <subfield code="b">FBR</subfield>
      <subfield code="c">FH</subfield>
    </datafield>
  </record>
</holding>`

const holding3304XML = `<holding>
  <holding_id>3304</holding_id>
  <record>
    <datafield tag="852" ind1="8" ind2=" ">
      <subfield code="b">FBNW</subfield>
    </datafield>
    <datafield tag="866" ind1="3" ind2="0">
      <subfield code="a">2000 -</subfield>
    </datafield>
  </record>
</holding>`

const bibXML = `<bibs total_record_count="1">
  <bib>
    <mms_id>990001</mms_id>
    <title>Salzburger Jahrbuch</title>
    <record>
      <leader>00000nas a2200000 c 4500</leader>
      <controlfield tag="001">990001</controlfield>
      <datafield tag="245" ind1="1" ind2="0">
        <subfield code="a">Salzburger Jahrbuch :</subfield>
        <subfield code="b">Geschichte und Kultur /</subfield>
        <subfield code="n">Band 2</subfield>
      </datafield>
      <datafield tag="AVE" ind1=" " ind2=" ">
        <subfield code="8">5301</subfield>
        <subfield code="m">Digizeitschriften</subfield>
        <subfield code="u">https://resolver.example.org/5301</subfield>
        <subfield code="e">Available</subfield>
      </datafield>
      <datafield tag="AVE" ind1=" " ind2=" ">
        <subfield code="8">5302</subfield>
        <subfield code="m">Old platform</subfield>
        <subfield code="e">Not Available</subfield>
      </datafield>
      <datafield tag="AVD" ind1=" " ind2=" ">
        <subfield code="b">HB</subfield>
        <subfield code="d">https://digital.example.org/delivery/1</subfield>
        <subfield code="e">available</subfield>
      </datafield>
    </record>
  </bib>
</bibs>`

const holdingText2201XML = `<holding>
  <holding_id>2201</holding_id>
  <record>
    <datafield tag="852" ind1="8" ind2="1">
      <subfield code="b">HB</subfield>
      <subfield code="c">MAG</subfield>
      <subfield code="z">Im Lesesaal benutzbar</subfield>
    </datafield>
    <datafield tag="866" ind1="3" ind2="0">
      <subfield code="a">1.1950 -</subfield>
    </datafield>
    <datafield tag="541" ind1="1" ind2=" ">
      <subfield code="3">v.1</subfield>
      <subfield code="d">2020</subfield>
    </datafield>
  </record>
</holding>`
